// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the chain-data server the light
// wallet reads blocks from.
//
// The primary abstraction is [ChainAdapter], which decouples the wallet
// engine from the underlying protocol. The package ships a JSON-over-HTTP
// implementation ([NewHTTPChainAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-light-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chain_adapter_mock.go -package=mock

// ChainAdapter defines read-only access to the chain-data server.
type ChainAdapter interface {
	// LatestBlockHeight returns the current chain tip.
	LatestBlockHeight(ctx context.Context) (models.LatestBlock, error)

	// ServerInfo describes the server and the chain it follows.
	ServerInfo(ctx context.Context) (models.ServerInfo, error)

	// BlockRange returns the compact blocks in [start, end], ascending.
	BlockRange(ctx context.Context, start, end uint64) ([]models.CompactBlock, error)

	// Mempool returns the outputs of not-yet-mined transactions.
	Mempool(ctx context.Context) ([]models.CompactTx, error)
}
