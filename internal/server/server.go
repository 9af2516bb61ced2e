// Package server is a small static file server for the game page and its
// WebAssembly binary.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	cfg    Config
	http   *http.Server
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h, err := NewHandler(cfg.Root, cfg.IndexFallback, logger)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// ListenAndServe binds the configured address and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()
	s.logger.Info("snake game server is running", slog.String("url", "http://"+ln.Addr().String()), slog.String("root", s.cfg.Root))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
