package server

import (
	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-hashids/pkg/common/http/handler"
	"github.com/huynhanx03/go-hashids/pkg/common/http/middleware"
	"github.com/huynhanx03/go-hashids/pkg/constraints"
)

func (s *Server) routes(r *gin.Engine) {
	r.GET("/healthz", s.healthz)

	v1 := r.Group("/v1")
	v1.GET("/namespaces", s.namespaces)
	v1.GET("/ids/:"+constraints.ParamHash,
		middleware.DecodeParam(s.registry.Default(), constraints.ParamHash),
		s.resolveID,
	)

	ns := v1.Group("/namespaces/:" + constraints.ParamNamespace)
	ns.POST("/encode", handler.Wrap(s.encode))
	ns.POST("/decode", handler.Wrap(s.decode))
	ns.POST("/decode/batch", handler.Wrap(s.decodeBatch))
	ns.POST("/hex/encode", handler.Wrap(s.encodeHex))
	ns.POST("/hex/decode", handler.Wrap(s.decodeHex))
}
