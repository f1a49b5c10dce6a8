package service

import (
	"context"
	"maps"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/models"
)

type appInfoService struct {
	info   map[string]string
	logger *logger.Logger
}

// NewAppInfoService combines linker-injected build data with the configured
// application version. The configured version wins when the build carries
// none.
func NewAppInfoService(cfg config.ClientApp, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	info := build.Dump()
	if cfg.Version != "" && info["version"] == "N/A" {
		info["version"] = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) map[string]string {
	return maps.Clone(s.info)
}
