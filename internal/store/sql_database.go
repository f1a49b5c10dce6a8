package store

import (
	"database/sql"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/migrations"
)

// DB wraps the wallet database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the wallet schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
