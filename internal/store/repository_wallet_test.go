package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/models"
)

func newTestWalletRepo(t *testing.T) (*walletRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &walletRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock
}

func testWallet() models.Wallet {
	return models.Wallet{
		Chain:            models.Mainnet,
		EncryptedSeed:    []byte{1, 2, 3},
		EncryptionSalt:   []byte{4, 5, 6},
		Birthday:         900,
		LastSyncedHeight: 900,
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestWalletExists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"empty file", 0, false},
		{"wallet present", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestWalletRepo(t)
			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM wallet`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.WalletExists(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalletExists_QueryError(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("no such table"))

	_, err := repo.WalletExists(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateWallet_Success(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	w := testWallet()
	addrs := []models.Address{{Index: 0, Address: "zs1a"}, {Index: 1, Address: "zs1b"}}

	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO wallet`).
		WithArgs("main", w.EncryptedSeed, w.EncryptionSalt, sqlmock.AnyArg(), sqlmock.AnyArg(), w.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO addresses`).WithArgs(sqlmock.AnyArg(), "zs1a").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO addresses`).WithArgs(sqlmock.AnyArg(), "zs1b").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateWallet(context.Background(), w, addrs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWallet_AlreadyExists(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.CreateWallet(context.Background(), testWallet(), nil)
	assert.ErrorIs(t, err, ErrWalletAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWallet_AddressInsertFailsRollsBack(t *testing.T) {
	repo, mock := newTestWalletRepo(t)

	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO wallet`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO addresses`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.CreateWallet(context.Background(), testWallet(), []models.Address{{Index: 0, Address: "zs1a"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWallet(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	w := testWallet()

	mock.ExpectQuery(`SELECT\s+chain`).WillReturnRows(
		sqlmock.NewRows([]string{"chain", "encrypted_seed", "encryption_salt", "birthday", "last_synced_height", "created_at"}).
			AddRow("main", w.EncryptedSeed, w.EncryptionSalt, int64(900), int64(950), w.CreatedAt),
	)

	got, err := repo.GetWallet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Mainnet, got.Chain)
	assert.Equal(t, uint64(900), got.Birthday)
	assert.Equal(t, uint64(950), got.LastSyncedHeight)
	assert.Equal(t, w.EncryptedSeed, got.EncryptedSeed)
}

func TestGetWallet_NotFound(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectQuery(`SELECT\s+chain`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetWallet(context.Background())
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestUpdateSyncHeight_NoWallet(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectExec(`UPDATE wallet SET last_synced_height`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSyncHeight(context.Background(), 10)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestSaveTransactions_AdvancesCursorInSameTx(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	now := time.Now().UTC()
	txs := []models.Transaction{
		{TxID: "aa", Address: "zs1a", BlockHeight: 901, Value: 10, Datetime: now},
		{TxID: "bb", Address: "zs1a", BlockHeight: 902, Value: 20, Datetime: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT OR REPLACE INTO transactions`).WithArgs("aa", "zs1a", sqlmock.AnyArg(), int64(10), "", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT OR REPLACE INTO transactions`).WithArgs("bb", "zs1a", sqlmock.AnyArg(), int64(20), "", now).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(`UPDATE wallet SET last_synced_height`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveTransactions(context.Background(), txs, 1000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTransactions_CommitError(t *testing.T) {
	repo, mock := newTestWalletRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE wallet SET last_synced_height`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := repo.SaveTransactions(context.Background(), nil, 1000)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestResetSyncState(t *testing.T) {
	repo, mock := newTestWalletRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM transactions`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE wallet SET last_synced_height`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ResetSyncState(context.Background(), 900))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveImportedKey_Duplicate(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectExec(`INSERT OR IGNORE INTO imported_keys`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveImportedKey(context.Background(), models.ImportedKey{Key: "k", ImportedAt: time.Now()})
	assert.ErrorIs(t, err, ErrKeyAlreadyImported)
}

func TestListTransactions_ScanError(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectQuery(`SELECT txid`).WillReturnRows(sqlmock.NewRows([]string{"txid"}).AddRow("aa"))

	_, err := repo.ListTransactions(context.Background(), models.TransactionFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListAddresses(t *testing.T) {
	repo, mock := newTestWalletRepo(t)
	mock.ExpectQuery(`SELECT address_index, address FROM addresses`).WillReturnRows(
		sqlmock.NewRows([]string{"address_index", "address"}).AddRow(0, "zs1a").AddRow(1, "zs1b"),
	)

	got, err := repo.ListAddresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Address{{Index: 0, Address: "zs1a"}, {Index: 1, Address: "zs1b"}}, got)
}
