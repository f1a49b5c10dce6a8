package http

import (
	"github.com/heptiolabs/healthcheck"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/service"
	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/internal/utils"
)

type Handler struct {
	services *service.ClientServices
	health   healthcheck.Handler
	ids      *utils.UUIDGenerator

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, cfg config.ClientApp, logger *logger.Logger) *Handler {
	health := healthcheck.NewHandler()
	health.AddReadinessCheck("wallet-session", func() error {
		if services.LifecycleService.State() != session.StateActive {
			return service.ErrNoActiveSession
		}
		return nil
	})

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		health:       health,
		ids:          utils.NewUUIDGenerator(),
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
