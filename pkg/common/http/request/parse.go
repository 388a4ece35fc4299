package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-hashids/pkg/common/apperr"
	"github.com/huynhanx03/go-hashids/pkg/common/http/validation"
)

// ParseRequest binds the path parameters and the JSON body of c into a T,
// then validates it. Fields take path parameters through `uri` tags.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(&req); err != nil {
			return nil, apperr.New(apperr.CodeInvalidInput, err.Error(), http.StatusBadRequest, err)
		}
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperr.New(apperr.CodeInvalidInput, apperr.MsgInvalidInput+": "+err.Error(), http.StatusBadRequest, err)
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		return nil, apperr.New(apperr.CodeValidationFailed, apperr.MsgValidation+": "+msg, http.StatusBadRequest, nil)
	}

	return &req, nil
}
