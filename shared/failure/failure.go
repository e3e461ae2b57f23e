package failure

import (
	"errors"
	"net/http"
)

// Failure is an error whose message is safe to show to the client, paired with the HTTP
// status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ListNotFound   = &Failure{Code: http.StatusNotFound, Message: "The specified list was not found."}
	TodoNotFound   = &Failure{Code: http.StatusNotFound, Message: "The specified todo was not found."}
	MissingSession = &Failure{Code: http.StatusBadRequest, Message: "session is required"}
)

func (e *Failure) Error() string {
	return e.Message
}

// New returns a Failure with the given status and message.
func New(code int, message string) error {
	return &Failure{
		Code:    code,
		Message: message,
	}
}

// BadRequest turns err into a 400 failure. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

// BadRequestFromString returns a 400 failure with msg as its message.
func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

// GetCode returns the status of the first Failure in err's chain, or 500 when there is none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
