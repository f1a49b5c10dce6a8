package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the client config.
type StructuredJSONConfig struct {
	App struct {
		Version          string   `json:"version"`
		WalletPassphrase string   `json:"wallet_passphrase"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Adapter struct {
		ServerURI      string   `json:"server_uri"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		LogFile string `json:"log_file"`
	} `json:"storage,omitempty"`

	Server struct {
		ControlAddress string   `json:"control_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PollInterval    Duration `json:"poll_interval"`
		MonitorInterval Duration `json:"monitor_interval"`
		MaxInFlight     int      `json:"max_in_flight"`
	} `json:"workers,omitempty"`

	Chain    string `json:"chain"`
	Headless bool   `json:"headless"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:          jsonCfg.App.Version,
			WalletPassphrase: jsonCfg.App.WalletPassphrase,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
		},
		Adapter: Adapter{
			ServerURI:      jsonCfg.Adapter.ServerURI,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			LogFile: jsonCfg.Storage.LogFile,
		},
		Server: Server{
			ControlAddress: jsonCfg.Server.ControlAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PollInterval:    time.Duration(jsonCfg.Workers.PollInterval),
			MonitorInterval: time.Duration(jsonCfg.Workers.MonitorInterval),
			MaxInFlight:     jsonCfg.Workers.MaxInFlight,
		},
		Chain:    jsonCfg.Chain,
		Headless: jsonCfg.Headless,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
