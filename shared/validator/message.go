package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// templates maps a validation tag to the message shown to the client. {field} is the JSON name
// of the offending field and {param} the tag parameter.
var templates = map[string]string{
	"required": "{field} is required",
	"trimlen":  "{field} must be {param} characters",
}

func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template, ok := templates[fieldErr.Tag()]
		if !ok {
			continue
		}

		replacer := strings.NewReplacer(
			"{field}", fieldErr.Field(),
			"{param}", strings.ReplaceAll(fieldErr.Param(), "-", " - "),
		)

		return replacer.Replace(template)
	}

	return fieldErrors.Error()
}
