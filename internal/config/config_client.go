package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// PageSize is the fixed leave list page size.
	PageSize int
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the HTTP base URL of the leave-tracker API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client's durable store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
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

	clientCfg := &ClientConfig{
		App: ClientApp{
			PageSize: cfg.App.PageSize,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}

// DevServerConfig is the configuration view consumed by cmd/devserver.
type DevServerConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// TokenSignKey signs issued JWT tokens.
	TokenSignKey string
	// TokenDuration is the issued token lifetime.
	TokenDuration time.Duration
	// PageSize bounds the default list page size.
	PageSize int
}

// GetDevServerConfig builds and validates the stub server configuration.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &DevServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.Server.TokenSignKey,
		TokenDuration: cfg.Server.TokenDuration,
		PageSize:      cfg.App.PageSize,
	}

	return serverCfg, serverCfg.validate()
}
