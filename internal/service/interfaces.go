package service

import (
	"context"

	"github.com/MKhiriev/go-light-wallet/internal/session"
	"github.com/MKhiriev/go-light-wallet/models"
)

// LifecycleService creates, resumes and tears down the wallet session.
// A session is either fully installed in the registry or absent; no
// partially built engine is ever visible to other goroutines. Every
// initializer fails with ErrAlreadyInitialized while a session is active.
type LifecycleService interface {
	// InitializeNew asks the chain-data server for the current height,
	// builds a new wallet born 100 blocks below it, starts its monitor and
	// installs it. It returns the seed phrase as JSON.
	//
	// A failure to read the seed is reported as ErrSeedPhrase but the
	// session is still installed.
	InitializeNew(ctx context.Context) (string, error)

	// InitializeExisting restores the persisted wallet, starts its monitor
	// and installs it. It returns "OK".
	InitializeExisting(ctx context.Context) (string, error)

	// Initialize resumes the persisted wallet if there is one and creates a
	// new one otherwise.
	Initialize(ctx context.Context) (string, error)

	// Deinitialize empties the registry. The engine is closed when the last
	// running command releases it.
	Deinitialize()

	// State reports whether a session is installed.
	State() session.State
}

// CommandService routes named commands to the active session.
type CommandService interface {
	// Dispatch runs req against the active session. Long-running commands
	// (sync, rescan, import) are started in the background and answered
	// with "OK"; every other command runs inline and its result is
	// returned verbatim. Without a session it returns
	// "Error: light client is not initialized".
	Dispatch(ctx context.Context, req models.CommandRequest) string

	// Exec is Dispatch for a bare name and argument string.
	Exec(ctx context.Context, command, args string) string

	// Wait blocks until every background command has finished.
	Wait()
}

// AppInfoService reports what binary is running.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) map[string]string
}
