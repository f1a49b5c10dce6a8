package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-light-wallet/models"
)

const (
	countWallets = `SELECT COUNT(*) FROM wallet;`

	createWallet = `INSERT INTO wallet (
			id,
			chain,
			encrypted_seed,
			encryption_salt,
			birthday,
			last_synced_height,
			created_at
		) VALUES (1, ?, ?, ?, ?, ?, ?);`

	createAddress = `INSERT INTO addresses (address_index, address) VALUES (?, ?);`

	getWallet = `SELECT
			chain,
			encrypted_seed,
			encryption_salt,
			birthday,
			last_synced_height,
			created_at
		FROM wallet
		WHERE id = 1;`

	updateSyncHeight = `UPDATE wallet SET last_synced_height = ? WHERE id = 1;`

	saveTransaction = `INSERT OR REPLACE INTO transactions (
			txid,
			address,
			block_height,
			value,
			memo,
			datetime
		) VALUES (?, ?, ?, ?, ?, ?);`

	deleteAllTransactions = `DELETE FROM transactions;`

	saveImportedKey = `INSERT OR IGNORE INTO imported_keys (key, birthday, imported_at) VALUES (?, ?, ?);`

	listImportedKeys = `SELECT key, birthday, imported_at FROM imported_keys ORDER BY imported_at, key;`

	listAddresses = `SELECT address_index, address FROM addresses ORDER BY address_index;`
)

var transactionColumns = []string{
	"txid",
	"address",
	"block_height",
	"value",
	"memo",
	"datetime",
}

// buildListTransactionsQuery builds the SELECT for [models.TransactionFilter].
// Zero-valued filter fields add no condition.
func buildListTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	qb := sq.Select(transactionColumns...).
		From("transactions").
		OrderBy("block_height DESC", "txid").
		PlaceholderFormat(sq.Question)

	if filter.Address != "" {
		qb = qb.Where(sq.Eq{"address": filter.Address})
	}
	if filter.FromHeight > 0 {
		qb = qb.Where(sq.GtOrEq{"block_height": filter.FromHeight})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
