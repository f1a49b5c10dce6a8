package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-light-wallet/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported by the control API.
	Version string
	// WalletPassphrase protects the seed stored in the wallet file.
	WalletPassphrase string
	// TokenSignKey signs control API tokens. Empty disables control auth.
	TokenSignKey string
	// TokenIssuer is the issuer claim of control API tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of an issued control API token.
	TokenDuration time.Duration
}

// ClientAdapter holds chain-data server settings.
type ClientAdapter struct {
	// ServerURI is the base URI of the chain-data server.
	ServerURI string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite wallet file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// LogFile is the debug log file path.
	LogFile string
}

// ClientServer holds the control API settings.
type ClientServer struct {
	// ControlAddress is the control API listen address. Empty disables it.
	ControlAddress string
	// RequestTimeout bounds a single control request.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the sync status is polled.
	PollInterval time.Duration
	// MonitorInterval defines how often the engine polls the mempool.
	MonitorInterval time.Duration
	// MaxInFlight caps concurrently running long commands. Zero is unbounded.
	MaxInFlight int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains chain-data server settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Server contains control API settings.
	Server ClientServer
	// Workers contains background job settings.
	Workers ClientWorkers
	// Chain is the network the wallet belongs to.
	Chain models.ChainType
	// Headless disables the interactive console.
	Headless bool
	// IssueToken asks the client to print a control token and exit.
	IssueToken bool
}

// WalletConfig is the subset of [ClientConfig] the wallet engine factory
// needs to query the chain, construct, restore or probe a wallet.
type WalletConfig struct {
	ServerURI       string
	RequestTimeout  time.Duration
	DSN             string
	Passphrase      string
	Chain           models.ChainType
	MonitorInterval time.Duration
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:          cfg.App.Version,
			WalletPassphrase: cfg.App.WalletPassphrase,
			TokenSignKey:     cfg.App.TokenSignKey,
			TokenIssuer:      cfg.App.TokenIssuer,
			TokenDuration:    cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			ServerURI:      cfg.Adapter.ServerURI,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			LogFile: cfg.Storage.LogFile,
		},
		Server: ClientServer{
			ControlAddress: cfg.Server.ControlAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			PollInterval:    cfg.Workers.PollInterval,
			MonitorInterval: cfg.Workers.MonitorInterval,
			MaxInFlight:     cfg.Workers.MaxInFlight,
		},
		Chain:      models.ChainType(cfg.Chain),
		Headless:   cfg.Headless,
		IssueToken: cfg.IssueToken,
	}
}

// Wallet returns the engine factory view of the config.
func (cfg *ClientConfig) Wallet() WalletConfig {
	return WalletConfig{
		ServerURI:       cfg.Adapter.ServerURI,
		RequestTimeout:  cfg.Adapter.RequestTimeout,
		DSN:             cfg.Storage.DB.DSN,
		Passphrase:      cfg.App.WalletPassphrase,
		Chain:           cfg.Chain,
		MonitorInterval: cfg.Workers.MonitorInterval,
	}
}
