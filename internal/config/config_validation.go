// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every consumer before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxInFlight < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURI == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	u, err := url.Parse(cfg.Adapter.ServerURI)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.MonitorInterval <= 0 || cfg.Workers.MaxInFlight < 0 {
		return ErrInvalidWorkerConfigs
	}

	if !cfg.Chain.Valid() {
		return ErrInvalidChain
	}

	if cfg.App.TokenSignKey != "" && cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
