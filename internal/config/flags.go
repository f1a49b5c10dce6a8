package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-s chain-data server URI
//	-request-timeout chain-data request timeout (e.g., "30s")
//	-w wallet file path
//	-l log file path
//	-chain network name (main, test, regtest)
//	-a control API address in format [host]:[port]
//	-poll-interval sync status poll interval (e.g., "1s")
//	-monitor-interval mempool monitor interval (e.g., "10s")
//	-max-in-flight cap on concurrently running long commands (0 = unbounded)
//	-passphrase wallet passphrase
//	-token-sign-key control token signing key
//	-token-duration control token duration (e.g., "24h")
//	-headless run the status poll loop instead of the console
//	-issue-token print a control API token and exit
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var controlAddress NetAddress
	var serverURI, walletPath, logPath, chain string
	var passphrase, tokenSignKey, jsonConfigPath string
	var requestTimeout, pollInterval, monitorInterval, tokenDuration time.Duration
	var maxInFlight int
	var headless, issueToken bool

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&serverURI, "s", "", "Chain-data server URI")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Chain-data request timeout (e.g., 30s)")
	fs.StringVar(&walletPath, "w", "", "Wallet file path")
	fs.StringVar(&logPath, "l", "", "Log file path")
	fs.StringVar(&chain, "chain", "", "Network: main, test or regtest")
	fs.Var(&controlAddress, "a", "Control API address host:port")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Sync status poll interval (e.g., 1s)")
	fs.DurationVar(&monitorInterval, "monitor-interval", 0, "Mempool monitor interval (e.g., 10s)")
	fs.IntVar(&maxInFlight, "max-in-flight", 0, "Max concurrently running long commands (0 = unbounded)")
	fs.StringVar(&passphrase, "passphrase", "", "Wallet passphrase")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Control token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Control token duration (e.g., 24h)")
	fs.BoolVar(&headless, "headless", false, "Run without the interactive console")
	fs.BoolVar(&issueToken, "issue-token", false, "Print a control API token and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			WalletPassphrase: passphrase,
			TokenSignKey:     tokenSignKey,
			TokenDuration:    tokenDuration,
		},
		Adapter: Adapter{
			ServerURI:      serverURI,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:      DB{DSN: walletPath},
			LogFile: logPath,
		},
		Server: Server{
			ControlAddress: controlAddress.String(),
		},
		Workers: Workers{
			PollInterval:    pollInterval,
			MonitorInterval: monitorInterval,
			MaxInFlight:     maxInFlight,
		},
		Chain:        chain,
		Headless:     headless,
		IssueToken:   issueToken,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
