package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/handler"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or a stop signal arrives, then shuts the
// listener down gracefully.
func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.httpServer.listen(); err != nil {
		return fmt.Errorf("error binding %s: %w", s.httpServer.server.Addr, err)
	}

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.httpServer.RunServer()
	}()
	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
	case <-served:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
