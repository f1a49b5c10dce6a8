package engine

import "errors"

var (
	// ErrSyncInProgress is returned when sync, rescan or import is
	// requested while another one is running.
	ErrSyncInProgress = errors.New("sync is already in progress")

	// ErrUnknownCommand is returned for a command name outside the table.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command that needs an argument
	// gets none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNoWallet is returned by RestoreFromStorage when no wallet is
	// persisted at the configured location.
	ErrNoWallet = errors.New("no wallet found in storage")

	// ErrWalletExists is returned by Construct when the configured location
	// already holds a wallet.
	ErrWalletExists = errors.New("wallet already exists in storage")

	// ErrChainMismatch is returned when a wallet file created for one
	// network is opened for another.
	ErrChainMismatch = errors.New("wallet belongs to a different chain")

	// ErrEngineClosed is returned by operations on a closed engine.
	ErrEngineClosed = errors.New("wallet engine is closed")
)
