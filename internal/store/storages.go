package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
)

// ClientStorages groups the wallet storage repositories together with the
// connection they share.
type ClientStorages struct {
	// WalletRepository is the SQLite-backed repository for the wallet file.
	WalletRepository WalletRepository

	db *DB
}

// NewClientStorages initialises the wallet storage layer:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [WalletRepository] to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientDB, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("func", "NewClientStorages").Msg("opening wallet storage")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		WalletRepository: NewWalletRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
