package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil || cfg.HTTPAddress == "" {
		return nil, errNoHandler
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.HTTPAddress, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
