package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/models"
)

type walletRepository struct {
	*DB
	logger *logger.Logger
}

// NewWalletRepository returns a [WalletRepository] backed by db.
func NewWalletRepository(db *DB, logger *logger.Logger) WalletRepository {
	return &walletRepository{
		DB:     db,
		logger: logger,
	}
}

func (w *walletRepository) WalletExists(ctx context.Context) (bool, error) {
	var count int
	if err := w.DB.QueryRowContext(ctx, countWallets).Scan(&count); err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.WalletExists").
			Msg("failed to count wallets")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (w *walletRepository) CreateWallet(ctx context.Context, wallet models.Wallet, addresses []models.Address) error {
	exists, err := w.WalletExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrWalletAlreadyExists
	}

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.CreateWallet").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, createWallet,
		string(wallet.Chain),
		wallet.EncryptedSeed,
		wallet.EncryptionSalt,
		wallet.Birthday,
		wallet.LastSyncedHeight,
		wallet.CreatedAt,
	)
	if err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.CreateWallet").
			Uint64("birthday", wallet.Birthday).
			Msg("failed to insert wallet")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, addr := range addresses {
		if _, err = tx.ExecContext(ctx, createAddress, addr.Index, addr.Address); err != nil {
			w.logger.Err(err).
				Str("func", "walletRepository.CreateWallet").
				Uint32("index", addr.Index).
				Msg("failed to insert address")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		w.logger.Err(err).Str("func", "walletRepository.CreateWallet").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *walletRepository) GetWallet(ctx context.Context) (models.Wallet, error) {
	var (
		wallet models.Wallet
		chain  string
	)

	err := w.DB.QueryRowContext(ctx, getWallet).Scan(
		&chain,
		&wallet.EncryptedSeed,
		&wallet.EncryptionSalt,
		&wallet.Birthday,
		&wallet.LastSyncedHeight,
		&wallet.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wallet{}, ErrWalletNotFound
	}
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.GetWallet").Msg("failed to scan wallet row")
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	wallet.Chain = models.ChainType(chain)

	return wallet, nil
}

func (w *walletRepository) UpdateSyncHeight(ctx context.Context, height uint64) error {
	result, err := w.DB.ExecContext(ctx, updateSyncHeight, height)
	if err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.UpdateSyncHeight").
			Uint64("height", height).
			Msg("failed to update sync height")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkWalletRowAffected(result)
}

func (w *walletRepository) SaveTransactions(ctx context.Context, txs []models.Transaction, syncedHeight uint64) error {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.SaveTransactions").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, t := range txs {
		_, err = tx.ExecContext(ctx, saveTransaction,
			t.TxID,
			t.Address,
			t.BlockHeight,
			t.Value,
			t.Memo,
			t.Datetime,
		)
		if err != nil {
			w.logger.Err(err).
				Str("func", "walletRepository.SaveTransactions").
				Str("txid", t.TxID).
				Msg("failed to save transaction")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	result, err := tx.ExecContext(ctx, updateSyncHeight, syncedHeight)
	if err != nil {
		w.logger.Err(err).
			Str("func", "walletRepository.SaveTransactions").
			Uint64("height", syncedHeight).
			Msg("failed to advance sync height")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = checkWalletRowAffected(result); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		w.logger.Err(err).Str("func", "walletRepository.SaveTransactions").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *walletRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query, args, err := buildListTransactionsQuery(filter)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ListTransactions").Msg("failed to build query")
		return nil, err
	}

	rows, err := w.DB.QueryContext(ctx, query, args...)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ListTransactions").Msg("failed to query transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.TxID, &t.Address, &t.BlockHeight, &t.Value, &t.Memo, &t.Datetime); err != nil {
			w.logger.Err(err).Str("func", "walletRepository.ListTransactions").Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ListTransactions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return txs, nil
}

func (w *walletRepository) ResetSyncState(ctx context.Context, height uint64) error {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ResetSyncState").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllTransactions); err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ResetSyncState").Msg("failed to delete transactions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, updateSyncHeight, height)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ResetSyncState").Msg("failed to rewind sync height")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = checkWalletRowAffected(result); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ResetSyncState").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (w *walletRepository) SaveImportedKey(ctx context.Context, key models.ImportedKey) error {
	result, err := w.DB.ExecContext(ctx, saveImportedKey, key.Key, key.Birthday, key.ImportedAt)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.SaveImportedKey").Msg("failed to save imported key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeyAlreadyImported
	}

	return nil
}

func (w *walletRepository) ListImportedKeys(ctx context.Context) ([]models.ImportedKey, error) {
	rows, err := w.DB.QueryContext(ctx, listImportedKeys)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ListImportedKeys").Msg("failed to query imported keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.ImportedKey
	for rows.Next() {
		var k models.ImportedKey
		if err := rows.Scan(&k.Key, &k.Birthday, &k.ImportedAt); err != nil {
			w.logger.Err(err).Str("func", "walletRepository.ListImportedKeys").Msg("failed to scan imported key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return keys, nil
}

func (w *walletRepository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	rows, err := w.DB.QueryContext(ctx, listAddresses)
	if err != nil {
		w.logger.Err(err).Str("func", "walletRepository.ListAddresses").Msg("failed to query addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var addrs []models.Address
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.Index, &a.Address); err != nil {
			w.logger.Err(err).Str("func", "walletRepository.ListAddresses").Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		addrs = append(addrs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return addrs, nil
}

func checkWalletRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWalletNotFound
	}
	return nil
}
