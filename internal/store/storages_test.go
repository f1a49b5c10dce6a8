package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/models"
)

func newTestStorages(t *testing.T) (*ClientStorages, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "wallet.dat")

	s, err := NewClientStorages(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dsn
}

func TestWalletFileExists(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "wallet.dat")
	assert.False(t, WalletFileExists(dsn))
	assert.False(t, WalletFileExists(filepath.Dir(dsn)))

	s, err := NewClientStorages(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, WalletFileExists(dsn))
}

func TestClientStorages_WalletLifecycle(t *testing.T) {
	s, _ := newTestStorages(t)
	repo := s.WalletRepository
	ctx := context.Background()

	exists, err := repo.WalletExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetWallet(ctx)
	assert.ErrorIs(t, err, ErrWalletNotFound)

	w := testWallet()
	addrs := []models.Address{{Index: 0, Address: "zs1a"}, {Index: 1, Address: "zs1b"}}
	require.NoError(t, repo.CreateWallet(ctx, w, addrs))
	assert.ErrorIs(t, repo.CreateWallet(ctx, w, nil), ErrWalletAlreadyExists)

	got, err := repo.GetWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, w.Birthday, got.Birthday)
	assert.Equal(t, w.EncryptedSeed, got.EncryptedSeed)
	assert.Equal(t, models.Mainnet, got.Chain)

	gotAddrs, err := repo.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Equal(t, addrs, gotAddrs)

	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{TxID: "aa", Address: "zs1a", BlockHeight: 901, Value: 10, Datetime: ts},
		{TxID: "bb", Address: "zs1b", BlockHeight: 905, Value: 20, Memo: "hi", Datetime: ts},
	}
	require.NoError(t, repo.SaveTransactions(ctx, txs, 910))
	// replaying the same batch is idempotent
	require.NoError(t, repo.SaveTransactions(ctx, txs, 910))

	all, err := repo.ListTransactions(ctx, models.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "bb", all[0].TxID)
	assert.Equal(t, "hi", all[0].Memo)

	onlyA, err := repo.ListTransactions(ctx, models.TransactionFilter{Address: "zs1a"})
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, uint64(901), onlyA[0].BlockHeight)

	got, err = repo.GetWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(910), got.LastSyncedHeight)

	require.NoError(t, repo.ResetSyncState(ctx, w.Birthday))
	all, err = repo.ListTransactions(ctx, models.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
	got, err = repo.GetWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, w.Birthday, got.LastSyncedHeight)

	key := models.ImportedKey{Key: "zs1imported", Birthday: 500, ImportedAt: ts}
	require.NoError(t, repo.SaveImportedKey(ctx, key))
	assert.ErrorIs(t, repo.SaveImportedKey(ctx, key), ErrKeyAlreadyImported)

	keys, err := repo.ListImportedKeys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "zs1imported", keys[0].Key)
	assert.Equal(t, uint64(500), keys[0].Birthday)
}

func TestClientStorages_ReopenKeepsData(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "wallet.dat")
	ctx := context.Background()

	s, err := NewClientStorages(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.WalletRepository.CreateWallet(ctx, testWallet(), nil))
	require.NoError(t, s.Close())

	s, err = NewClientStorages(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	exists, err := s.WalletRepository.WalletExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
