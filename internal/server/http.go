package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// defaultShutdownTimeout bounds graceful shutdown when the config sets none.
const defaultShutdownTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener
	timeout  time.Duration

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.ServerConfig, logger *logger.Logger) *httpServer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           router,
			ReadHeaderTimeout: timeout,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// listen binds the configured address so that bind errors surface before the
// server is reported as running.
func (h *httpServer) listen() error {
	if h.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = listener
	return nil
}

func (h *httpServer) RunServer() {
	if err := h.listen(); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server listen")
		return
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		// ошибки закрытия Listener
		h.logger.Err(err).Str("func", "*httpServer.Shutdown").Msg("HTTP server Shutdown")
	}
}

// Addr returns the bound address, which differs from the configured one when
// port 0 was requested.
func (h *httpServer) Addr() string {
	if h.listener == nil {
		return h.server.Addr
	}
	return h.listener.Addr().String()
}
