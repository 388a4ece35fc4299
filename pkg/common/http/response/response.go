package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-hashids/pkg/common/apperr"
)

// Response codes used by the generic wrappers
const (
	CodeSuccess          = 0
	CodeParamInvalid     = apperr.CodeInvalidInput
	CodeValidationFailed = apperr.CodeValidationFailed
	CodeNotFound         = apperr.CodeNotFound
	CodeInternalServer   = apperr.CodeInternal
)

const msgSuccess = "success"

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes data with status 200.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: msgSuccess,
		Data:    data,
	})
}

// ErrorResponse aborts the request with err. An *apperr.AppError anywhere in
// the chain supplies the code, message and status; otherwise code is used
// and the status is derived from it.
func ErrorResponse(c *gin.Context, code int, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.HTTPStatus, Response{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
		return
	}

	msg := http.StatusText(StatusFromCode(code))
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(StatusFromCode(code), Response{
		Code:    code,
		Message: msg,
	})
}

// StatusFromCode maps an application code (HTTP status followed by two
// digits) to its HTTP status.
func StatusFromCode(code int) int {
	status := code / 100
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
