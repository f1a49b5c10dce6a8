package service

import (
	"errors"

	"github.com/MKhiriev/go-light-wallet/internal/app"
)

var (
	// ErrNetwork is returned when the chain-data server cannot report the
	// current height.
	ErrNetwork = errors.New("could not reach the chain-data server")

	// ErrEngineInit is returned when a new wallet engine cannot be built.
	ErrEngineInit = errors.New("could not create the wallet")

	// ErrRestore is returned when the persisted wallet cannot be loaded.
	ErrRestore = errors.New("could not restore the wallet")

	// ErrSeedPhrase is returned when a fresh wallet cannot report its seed.
	// The session is installed regardless.
	ErrSeedPhrase = errors.New("could not read the seed phrase")

	// ErrAlreadyInitialized is returned by the initializers while a session
	// is installed. Deinitialize first.
	ErrAlreadyInitialized = errors.New(app.MsgAlreadyInitialized)

	ErrNoActiveSession = errors.New(app.MsgNotInitialized)
	ErrTooManyInFlight = errors.New(app.MsgTooManyInFlight)
)

// Outcome renders a lifecycle or dispatch result as the string handed to
// callers: result itself on success, "Error: <message>" otherwise.
func Outcome(result string, err error) string {
	if err != nil {
		return app.MsgErrorPrefix + err.Error()
	}
	return result
}
