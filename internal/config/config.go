// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the light
// wallet client. It aggregates all sub-configurations and is populated by
// merging built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, the wallet passphrase
	// and control API token parameters.
	App App `envPrefix:"APP_"`

	// Adapter holds the chain-data server connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the wallet file and log file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the optional local control API settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds intervals and limits for background work.
	Workers Workers `envPrefix:"WORKERS_"`

	// Chain is the network name: "main", "test" or "regtest".
	// Env: CHAIN
	Chain string `env:"CHAIN"`

	// Headless disables the interactive console; the client then runs the
	// plain status poll loop and logs to stdout.
	// Env: HEADLESS
	Headless bool `env:"HEADLESS"`

	// IssueToken makes the client print a control API bearer token and exit.
	// Flag only.
	IssueToken bool

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version reported by the control API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// WalletPassphrase protects the seed stored in the wallet file. An empty
	// passphrase is allowed; the seed is still sealed, just with a key
	// derived from the empty string.
	// Env: APP_WALLET_PASSPHRASE
	WalletPassphrase string `env:"WALLET_PASSPHRASE"`

	// TokenSignKey is the HMAC key used to sign and verify control API
	// bearer tokens. When empty the control API does not require auth.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued control tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued control token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the chain-data server connection settings.
type Adapter struct {
	// ServerURI is the base URI of the chain-data server
	// (e.g. "https://lightwalletd.example.com:9067").
	// Env: ADAPTER_SERVER_URI
	ServerURI string `env:"SERVER_URI"`

	// RequestTimeout bounds every request to the chain-data server.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the on-disk locations used by the client.
type Storage struct {
	// DB holds the wallet database settings.
	DB DB `envPrefix:"DB_"`

	// LogFile is the path of the debug log file.
	// Env: STORAGE_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// DB holds the wallet database settings.
type DB struct {
	// DSN is the path of the SQLite wallet file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the local control API settings.
type Server struct {
	// ControlAddress is the "host:port" the control API listens on. Empty
	// disables the control API.
	// Env: SERVER_ADDRESS
	ControlAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single control request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background work.
type Workers struct {
	// PollInterval is the period of the sync status poll loop.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MonitorInterval is the period of the engine's mempool monitor.
	// Env: WORKERS_MONITOR_INTERVAL
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL"`

	// MaxInFlight caps concurrently running long-running commands.
	// Zero means unbounded.
	// Env: WORKERS_MAX_IN_FLIGHT
	MaxInFlight int `env:"MAX_IN_FLIGHT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
