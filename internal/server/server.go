package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the control API server. It fails when no control
// address is configured.
func NewServer(handler http.Handler, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	if cfg.ControlAddress == "" {
		return nil, errNoServersAreCreated
	}

	logger.Info().Str("address", cfg.ControlAddress).Msg("creating control API server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg.ControlAddress, cfg.RequestTimeout, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-errCh
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
