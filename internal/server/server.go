// Package server runs the Spool HTTP service. It wires the composer engine
// and the API router into an http.Server and manages its lifecycle: bind,
// serve, and drain on shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spool-dev/spool/internal/api"
	"github.com/spool-dev/spool/internal/composer"
	"github.com/spool-dev/spool/internal/config"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal before the server gives up on them.
const shutdownTimeout = 5 * time.Second

// Server hosts the Spool API over HTTP.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	handler  http.Handler
	server   *http.Server
	listener net.Listener
}

// New creates a new Server instance with all components initialized.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if errs := config.Validate(cfg); errs.HasErrors() {
		return nil, errs
	}

	// Use a stderr logger if none provided
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	comp := composer.New(composer.Limits{
		HardLimit:  cfg.Platform.HardLimit,
		OptimalMin: cfg.Platform.OptimalMin,
		OptimalMax: cfg.Platform.OptimalMax,
	})
	router := api.NewRouter(comp, cfg, logger)

	return &Server{
		config:  cfg,
		logger:  logger,
		handler: router,
	}, nil
}

// Listen binds the configured address. It is split from Run so callers can
// bind port 0 and read the chosen port before serving.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.Server.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.Address(), err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Server.Address()
}

// Run starts the server and blocks until shutdown. Shutdown is triggered by
// context cancellation, SIGINT/SIGTERM, or a listener failure.
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Set up signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	serverErrCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", "addr", s.Addr())
		if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	// Wait for shutdown signal or context cancel
	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
	case sig := <-sigCh:
		s.logger.Info("received signal, shutting down", "signal", sig)
	case err := <-serverErrCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
			return err
		}
		return nil
	}

	return s.shutdown()
}

// shutdown drains in-flight requests before closing the server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("server shutdown error", "error", err)
		return err
	}
	return nil
}
