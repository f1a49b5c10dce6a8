// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults. The wallet and log file names follow the layout the
// mobile bindings used: both files live side by side in the working
// directory.
const (
	DefaultServerURI       = "https://zcash.mysideoftheweb.com:9067"
	DefaultWalletFile      = "wallet.dat"
	DefaultLogFile         = "wallet.debug.log"
	DefaultChain           = "main"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultPollInterval    = time.Second
	DefaultMonitorInterval = 10 * time.Second
	DefaultTokenIssuer     = "go-light-wallet"
	DefaultTokenDuration   = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Adapter: Adapter{
			ServerURI:      DefaultServerURI,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB:      DB{DSN: DefaultWalletFile},
			LogFile: DefaultLogFile,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PollInterval:    DefaultPollInterval,
			MonitorInterval: DefaultMonitorInterval,
		},
		Chain: DefaultChain,
	}
}
