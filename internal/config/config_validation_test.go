package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{PageSize: 10},
		Adapter: ClientAdapter{ServerURL: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "test.db"}},
	}
}

// TestClientConfigValidate covers each invalid-field branch.
func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}, wantErr: nil},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty server url", mutate: func(c *ClientConfig) { c.Adapter.ServerURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero page size", mutate: func(c *ClientConfig) { c.App.PageSize = 0 }, wantErr: ErrInvalidAppConfigs},
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

// TestDevServerConfigValidate verifies required stub server settings.
func TestDevServerConfigValidate(t *testing.T) {
	valid := DevServerConfig{
		HTTPAddress:   "localhost:8080",
		TokenSignKey:  "key",
		TokenDuration: time.Hour,
	}
	assert.NoError(t, valid.validate())

	missingKey := valid
	missingKey.TokenSignKey = ""
	assert.ErrorIs(t, missingKey.validate(), ErrInvalidServerConfigs)
}
