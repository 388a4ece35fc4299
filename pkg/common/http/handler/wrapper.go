package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-hashids/pkg/common/apperr"
	"github.com/huynhanx03/go-hashids/pkg/common/http/request"
	"github.com/huynhanx03/go-hashids/pkg/common/http/response"
)

// HandlerFunc is the generic function signature
type HandlerFunc[T any, R any] func(context.Context, *T) (R, error)

// Wrap converts a generic handler to a Gin handler.
// Errors that carry no *apperr.AppError become a 500 whose message does not
// reveal the cause; the cause is kept in c.Errors for the request log.
func Wrap[T any, R any](h HandlerFunc[T, R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := request.ParseRequest[T](c)
		if err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, err)
			return
		}

		res, err := h(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			appErr := toAppError(err)
			response.ErrorResponse(c, appErr.Code, appErr)
			return
		}

		response.SuccessResponse(c, response.CodeSuccess, res)
	}
}

func toAppError(err error) *apperr.AppError {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperr.New(apperr.CodeInternal, apperr.MsgInternal, http.StatusInternalServerError, err)
}
