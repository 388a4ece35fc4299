package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/huynhanx03/go-hashids/pkg/hashids"
)

// Application codes
const (
	CodeInvalidInput      = 40001
	CodeValidationFailed  = 40002
	CodeNotFound          = 40401
	CodeNamespaceNotFound = 40402
	CodeOverflow          = 42201
	CodeInternal          = 50001
	CodeConfig            = 50002
)

// Generic Action Messages
const (
	MsgInvalidInput  = "invalid input"
	MsgValidation    = "validation failed"
	MsgNotFound      = "not found"
	MsgOverflow      = "number out of range"
	MsgConfigInvalid = "invalid configuration"
	MsgInternal      = "internal error"
)

// MapError wraps an error with a standardized message
func MapError(serviceName string, err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return Wrap(err, code, formattedMsg, httpStatus)
}

// NewError creates a new AppError with standardized message format
func NewError(serviceName string, code int, msg string, httpStatus int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return New(code, formattedMsg, httpStatus, cause)
}

// FromHashids maps a codec error to an AppError. A hash that does not
// decode is reported as not found, since it names no resource.
func FromHashids(serviceName string, err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, hashids.ErrInvalidInput):
		return MapError(serviceName, err, CodeInvalidInput, MsgInvalidInput, http.StatusBadRequest)
	case errors.Is(err, hashids.ErrDecodeMismatch):
		return MapError(serviceName, err, CodeNotFound, MsgNotFound, http.StatusNotFound)
	case errors.Is(err, hashids.ErrOverflow):
		return MapError(serviceName, err, CodeOverflow, MsgOverflow, http.StatusUnprocessableEntity)
	case errors.Is(err, hashids.ErrConfig):
		return MapError(serviceName, err, CodeConfig, MsgConfigInvalid, http.StatusInternalServerError)
	default:
		return MapError(serviceName, err, CodeInternal, MsgInternal, http.StatusInternalServerError)
	}
}
