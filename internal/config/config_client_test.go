package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-wallet/models"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestNewClientConfig_FromDefaults(t *testing.T) {
	cfg := validClientConfig()

	require.NoError(t, cfg.validate())
	assert.Equal(t, models.Mainnet, cfg.Chain)
	assert.Equal(t, DefaultServerURI, cfg.Adapter.ServerURI)
	assert.Equal(t, DefaultWalletFile, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Server.ControlAddress)
	assert.Zero(t, cfg.Workers.MaxInFlight)
}

func TestClientConfig_Wallet(t *testing.T) {
	cfg := validClientConfig()
	cfg.App.WalletPassphrase = "pass"
	cfg.Chain = models.Testnet

	w := cfg.Wallet()

	assert.Equal(t, WalletConfig{
		ServerURI:       DefaultServerURI,
		RequestTimeout:  DefaultRequestTimeout,
		DSN:             DefaultWalletFile,
		Passphrase:      "pass",
		Chain:           models.Testnet,
		MonitorInterval: DefaultMonitorInterval,
	}, w)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "file::memory:?cache=shared" }, ErrInvalidStorageConfigs},
		{"empty server uri", func(c *ClientConfig) { c.Adapter.ServerURI = "" }, ErrInvalidAdapterConfigs},
		{"relative server uri", func(c *ClientConfig) { c.Adapter.ServerURI = "lightwalletd" }, ErrInvalidAdapterConfigs},
		{"zero request timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero poll interval", func(c *ClientConfig) { c.Workers.PollInterval = 0 }, ErrInvalidWorkerConfigs},
		{"zero monitor interval", func(c *ClientConfig) { c.Workers.MonitorInterval = 0 }, ErrInvalidWorkerConfigs},
		{"negative max in flight", func(c *ClientConfig) { c.Workers.MaxInFlight = -2 }, ErrInvalidWorkerConfigs},
		{"unknown chain", func(c *ClientConfig) { c.Chain = "mars" }, ErrInvalidChain},
		{"sign key without duration", func(c *ClientConfig) {
			c.App.TokenSignKey = "k"
			c.App.TokenDuration = 0
		}, ErrInvalidAppConfigs},
		{"sign key with duration", func(c *ClientConfig) {
			c.App.TokenSignKey = "k"
			c.App.TokenDuration = time.Minute
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
