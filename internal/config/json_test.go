package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDuration_UnmarshalString verifies that duration strings are parsed.
func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

// TestDuration_UnmarshalNumber verifies that bare nanosecond numbers are
// accepted for backwards compatibility.
func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

// TestDuration_UnmarshalInvalid verifies that garbage values are rejected.
func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

// TestParseJSON_MapsAllSections verifies the full file-to-config mapping.
func TestParseJSON_MapsAllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"page_size": 20, "version": "2.0.0"},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
		"server": map[string]any{
			"http_address":   "localhost:9999",
			"token_sign_key": "k",
			"token_duration": "2h",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Hour, cfg.Server.TokenDuration)
}
