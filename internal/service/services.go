package service

import (
	"fmt"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/engine"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/models"
)

// ClientServices groups the services the client runtime, the console and
// the control API share.
type ClientServices struct {
	LifecycleService LifecycleService
	CommandService   CommandService
	AppInfoService   AppInfoService

	spawner spawner
}

func NewClientServices(factory engine.Factory, registry *session.Registry, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	sp, err := newSpawner(cfg.Workers.MaxInFlight, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating command pool: %w", err)
	}

	return &ClientServices{
		LifecycleService: NewLifecycleService(factory, registry, cfg.Wallet(), logger),
		CommandService:   newCommandService(registry, sp, logger),
		AppInfoService:   NewAppInfoService(cfg.App, build, logger),
		spawner:          sp,
	}, nil
}

// Close waits for background commands and frees the command pool.
func (s *ClientServices) Close() {
	s.spawner.Wait()
	s.spawner.Release()
}
