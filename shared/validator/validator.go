package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"todos/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerTrimmedValidation checks a string's length after surrounding whitespace is removed.
// The param has the form "min-max", e.g. `trimlen=1-100`.
func registerTrimmedValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	var minLen, maxLen int
	if _, err := fmt.Sscanf(field.Param(), "%d-%d", &minLen, &maxLen); err != nil {
		return false
	}

	length := len([]rune(strings.TrimSpace(str)))

	return length >= minLen && length <= maxLen
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("trimlen", registerTrimmedValidation)
	if err != nil {
		panic(err)
	}
}

// jsonFieldName reports fields by the name clients send them under.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
