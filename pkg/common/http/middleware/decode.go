package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-hashids/pkg/common/apperr"
	"github.com/huynhanx03/go-hashids/pkg/common/http/response"
	"github.com/huynhanx03/go-hashids/pkg/constraints"
)

// ContextKeyID holds the id decoded by DecodeParam.
const ContextKeyID = constraints.ContextKeyID

// Decoder is the part of a hashids codec DecodeParam needs.
type Decoder interface {
	DecodeInt64(hash string) ([]int64, error)
}

// DecodeParam decodes the path parameter param as a hashid holding exactly
// one number and stores it under ContextKeyID. Anything else aborts with 404,
// so an obfuscated id that does not decode is indistinguishable from a
// missing resource.
func DecodeParam(codec Decoder, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		numbers, err := codec.DecodeInt64(c.Param(param))
		if err != nil || len(numbers) != 1 {
			response.ErrorResponse(c, apperr.CodeNotFound,
				apperr.New(apperr.CodeNotFound, apperr.MsgNotFound, http.StatusNotFound, err))
			return
		}

		c.Set(ContextKeyID, numbers[0])
		c.Next()
	}
}

// IDFromContext returns the id stored by DecodeParam.
func IDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextKeyID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
