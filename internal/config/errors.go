package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid chain-data server settings
	// (for example, an unparseable server URI or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a token sign key with a zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero poll interval or negative in-flight cap).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidChain indicates an unknown network name.
	ErrInvalidChain = errors.New("invalid chain: want main, test or regtest")
)
