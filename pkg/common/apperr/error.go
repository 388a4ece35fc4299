package apperr

import (
	"fmt"
)

// AppError is an error carrying an application code and the HTTP status it
// maps to.
type AppError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Cause      error  `json:"-"`
}

// New creates a new AppError
func New(code int, msg string, httpStatus int, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		Cause:      cause,
	}
}

// Wrap wraps err into an AppError
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	return New(code, msg, httpStatus, err)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
