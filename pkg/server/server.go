// Package server exposes the namespace registry over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-hashids/pkg/common/http/middleware"
	"github.com/huynhanx03/go-hashids/pkg/registry"
	"github.com/huynhanx03/go-hashids/pkg/settings"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	cfg      settings.Server
	registry *registry.Registry
	log      *zap.Logger
	engine   *gin.Engine
}

// New builds the gin engine for reg. cfg.Mode selects the gin mode when set.
func New(cfg settings.Server, reg *registry.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		log:      log.Named("http"),
		engine:   gin.New(),
	}
	s.engine.Use(middleware.Recovery(s.log), middleware.Logger(s.log))
	s.routes(s.engine)
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr is the listen address derived from the configuration.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
}

// Run listens on Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.Addr())
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  seconds(s.cfg.ReadTimeout),
		WriteTimeout: seconds(s.cfg.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	timeout := seconds(s.cfg.ShutdownTimeout)
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("shutting down", zap.Duration("timeout", timeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return <-errCh
}

func (s *Server) batchLimit() int {
	if s.cfg.BatchLimit <= 0 {
		return settings.DefaultBatchLimit
	}
	return s.cfg.BatchLimit
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
