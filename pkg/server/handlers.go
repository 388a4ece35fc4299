package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-hashids/pkg/common/apperr"
	"github.com/huynhanx03/go-hashids/pkg/common/http/middleware"
	"github.com/huynhanx03/go-hashids/pkg/common/http/response"
	"github.com/huynhanx03/go-hashids/pkg/hashids"
	"github.com/huynhanx03/go-hashids/pkg/registry"
)

const serviceName = "hashids"

func (s *Server) codec(namespace string) (*hashids.HashID, error) {
	codec, err := s.registry.Lookup(namespace)
	if err != nil {
		return nil, apperr.NewError(serviceName, apperr.CodeNamespaceNotFound, "namespace "+namespace+" not found", http.StatusNotFound, err)
	}
	return codec, nil
}

func (s *Server) encode(_ context.Context, req *EncodeRequest) (*EncodeResponse, error) {
	codec, err := s.codec(req.Namespace)
	if err != nil {
		return nil, err
	}

	hash, err := codec.EncodeInt64(req.Numbers...)
	if err != nil {
		return nil, apperr.FromHashids(serviceName, err)
	}
	return &EncodeResponse{Hash: hash}, nil
}

func (s *Server) decode(_ context.Context, req *DecodeRequest) (*DecodeResponse, error) {
	codec, err := s.codec(req.Namespace)
	if err != nil {
		return nil, err
	}

	numbers, err := codec.DecodeInt64(req.Hash)
	if err != nil {
		return nil, apperr.FromHashids(serviceName, err)
	}
	return &DecodeResponse{Numbers: numbers}, nil
}

// decodeBatch decodes every hash concurrently, at most BatchLimit at a time.
// Failures are reported per item; the request itself only fails when the
// namespace is unknown or the client goes away.
func (s *Server) decodeBatch(ctx context.Context, req *BatchDecodeRequest) (*BatchDecodeResponse, error) {
	codec, err := s.codec(req.Namespace)
	if err != nil {
		return nil, err
	}

	results := make([]BatchDecodeResult, len(req.Hashes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit())

	for i, hash := range req.Hashes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i].Hash = hash
			numbers, err := codec.DecodeInt64(hash)
			if err != nil {
				results[i].Error = apperr.FromHashids(serviceName, err).Error()
				return nil
			}
			results[i].Numbers = numbers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &BatchDecodeResponse{Results: results}, nil
}

func (s *Server) encodeHex(_ context.Context, req *EncodeHexRequest) (*EncodeResponse, error) {
	codec, err := s.codec(req.Namespace)
	if err != nil {
		return nil, err
	}

	hash, err := codec.EncodeHex(req.Hex)
	if err != nil {
		return nil, apperr.FromHashids(serviceName, err)
	}
	return &EncodeResponse{Hash: hash}, nil
}

func (s *Server) decodeHex(_ context.Context, req *DecodeRequest) (*DecodeHexResponse, error) {
	codec, err := s.codec(req.Namespace)
	if err != nil {
		return nil, err
	}

	hex, err := codec.DecodeHex(req.Hash)
	if err != nil {
		return nil, apperr.FromHashids(serviceName, err)
	}
	return &DecodeHexResponse{Hex: hex}, nil
}

func (s *Server) healthz(c *gin.Context) {
	response.SuccessResponse(c, response.CodeSuccess, gin.H{"status": "ok"})
}

func (s *Server) namespaces(c *gin.Context) {
	names := append([]string{registry.DefaultNamespace}, s.registry.Names()...)

	infos := make([]NamespaceInfo, 0, len(names))
	for _, name := range names {
		codec, ok := s.registry.Get(name)
		if !ok {
			// unregistered between Names and Get
			continue
		}
		infos = append(infos, NamespaceInfo{
			Name:       name,
			MinLength:  codec.MinLength(),
			Alphabet:   codec.Alphabet(),
			Separators: codec.Separators(),
			Guards:     codec.Guards(),
		})
	}
	response.SuccessResponse(c, response.CodeSuccess, infos)
}

// resolveID echoes the id decoded from an obfuscated path parameter.
func (s *Server) resolveID(c *gin.Context) {
	id, _ := middleware.IDFromContext(c)
	response.SuccessResponse(c, response.CodeSuccess, gin.H{"id": id})
}
