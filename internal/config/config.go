// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-leave-tracker application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the list page size and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local durable store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network address and timeout settings for the outbound
	// HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds settings for the development stub server binary. Unused
	// by the client runtime.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PageSize is the fixed number of leave requests fetched per list page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the client's durable storage.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite key-value database that
// backs the durable session store.
type DB struct {
	// DSN is the SQLite file path used to open the database connection
	// (e.g. "leave-tracker.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound HTTP transport.
type Adapter struct {
	// ServerURL is the base URL of the leave-tracker API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout applied to outbound requests
	// (e.g. "15s"). The underlying transport enforces it; the core applies
	// no timeouts of its own.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds settings consumed only by cmd/devserver.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the secret used to sign the JWT tokens the stub
	// server issues at login.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "1h", "30m").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// defaultConfig returns the built-in fallback values. It is appended last in
// the builder chain, so any value supplied through env, flags, or JSON wins
// over it.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PageSize: 10,
		},
		Storage: Storage{
			DB: DB{DSN: "leave-tracker.db"},
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Server: Server{
			HTTPAddress:   "localhost:8080",
			TokenSignKey:  "dev-only-sign-key",
			TokenDuration: time.Hour,
		},
	}
}
