package store

import (
	"context"

	"github.com/MKhiriev/go-light-wallet/models"
)

// WalletRepository persists one wallet: its header row, derived addresses,
// discovered transactions and imported keys.
type WalletRepository interface {
	WalletExists(ctx context.Context) (bool, error)
	CreateWallet(ctx context.Context, wallet models.Wallet, addresses []models.Address) error
	GetWallet(ctx context.Context) (models.Wallet, error)
	UpdateSyncHeight(ctx context.Context, height uint64) error
	// SaveTransactions stores txs and advances the sync cursor to
	// syncedHeight in one transaction.
	SaveTransactions(ctx context.Context, txs []models.Transaction, syncedHeight uint64) error
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	// ResetSyncState drops every stored transaction and rewinds the sync
	// cursor to height.
	ResetSyncState(ctx context.Context, height uint64) error
	SaveImportedKey(ctx context.Context, key models.ImportedKey) error
	ListImportedKeys(ctx context.Context) ([]models.ImportedKey, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
}
