package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s server base URL
//	-d local database path (SQLite file)
//	-c/-config json file path with configs
//	-a devserver listen address in format [host]:[port]
//	-page-size leave list page size
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token-sign-key devserver token signing key
//	-token-duration devserver token duration (e.g., "1h", "30m")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var listenAddress string
	var pageSize int
	var requestTimeout time.Duration
	var tokenSignKey string
	var tokenDuration time.Duration

	flag.StringVar(&serverURL, "s", "", "Server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&listenAddress, "a", "", "Devserver listen address host:port")
	flag.IntVar(&pageSize, "page-size", 0, "Leave list page size")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Devserver token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Devserver token duration (e.g., 1h, 30m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PageSize: pageSize,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:   listenAddress,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}
