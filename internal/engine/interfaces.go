// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine implements the light wallet: a stateful object that scans
// compact blocks from a chain-data server for transactions paying its
// addresses, persists what it finds in the wallet file, and answers named
// commands with JSON strings.
//
// The session layer only depends on [Engine] and [Factory].
package engine

import (
	"context"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is a live wallet.
type Engine interface {
	// SeedPhrase returns the wallet seed and birthday.
	SeedPhrase(ctx context.Context) (models.SeedPhrase, error)

	// ExecuteCommand runs the named command and returns its JSON result.
	// Failures are reported in the result as {"error": "..."}; it never
	// panics on unknown commands or bad arguments.
	ExecuteCommand(ctx context.Context, name string, args []string) string

	// StartBackgroundMonitor starts polling the mempool. It returns
	// immediately; the monitor stops when ctx is done.
	StartBackgroundMonitor(ctx context.Context)

	// Close waits for the monitor to stop and releases the wallet file.
	Close() error
}

// Factory creates engines.
type Factory interface {
	// QueryChainHeight asks the chain-data server for the current tip.
	QueryChainHeight(ctx context.Context, cfg config.WalletConfig) (uint64, error)

	// Construct creates a brand-new wallet born at startHeight.
	Construct(ctx context.Context, cfg config.WalletConfig, startHeight uint64) (Engine, error)

	// RestoreFromStorage opens the wallet persisted at cfg.DSN.
	RestoreFromStorage(ctx context.Context, cfg config.WalletConfig) (Engine, error)

	// StorageExists reports whether cfg.DSN holds a wallet. It never
	// creates the file.
	StorageExists(ctx context.Context, cfg config.WalletConfig) bool
}
