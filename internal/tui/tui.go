// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive wallet console: one bubbletea
// screen showing the session, the seed of a freshly created wallet, the
// polled sync status and a command prompt with its output log.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/service"
	"github.com/MKhiriev/go-light-wallet/models"
)

type TUI struct {
	services     *service.ClientServices
	build        models.AppBuildInfo
	pollInterval time.Duration
	logger       *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, pollInterval time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:     services,
		build:        build,
		pollInterval: pollInterval,
		logger:       logger.WithComponent("tui"),
	}
}

// Run shows the console until the user quits or ctx ends. initResult is
// the outcome of session initialization: the seed JSON of a new wallet,
// "OK" for a restored one or an error line.
func (t *TUI) Run(ctx context.Context, initResult string) error {
	model := newWalletModel(ctx, t.services, t.build, t.pollInterval, initResult)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("console stopped with error")
		return err
	}
	return nil
}
