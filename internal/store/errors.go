package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrWalletNotFound is returned when the wallet file holds no wallet row.
	ErrWalletNotFound = errors.New("wallet was not found")

	// ErrWalletAlreadyExists is returned by CreateWallet when the wallet
	// file already holds a wallet.
	ErrWalletAlreadyExists = errors.New("wallet already exists")

	// ErrKeyAlreadyImported is returned when the same key is imported twice.
	ErrKeyAlreadyImported = errors.New("key already imported")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values fails.
	ErrScanningRow = errors.New("failed to scan row")
)
