// Package server exposes the course generation and playback API over
// HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfuginay/courseforge-ai/internal/logger"
)

// Server wraps an http.Server with graceful shutdown.
type Server struct {
	srv *http.Server
	log *logger.Logger
}

// New builds a Server listening on addr. mode selects gin's mode,
// "release" for deployments and "debug" for local work.
func New(addr, mode string, router RouterConfig) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(router),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: router.Log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
