package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "user_id": "alice", "hash_key": "k", "version": "0.1.0" },
		"storage": { "db": { "dsn": "/tmp/a.db" } },
		"adapter": { "http_address": "localhost:8080", "request_timeout": "20s", "retry_count": 1 },
		"workers": { "poll_interval": "3s" },
		"metrics": { "address": ":9100" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "alice", cfg.App.UserID)
	assert.Equal(t, "k", cfg.App.HashKey)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "/tmp/a.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1, cfg.Adapter.RetryCount)
	assert.Equal(t, 3*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "error reading a json file")

	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"poll_interval": "never"}}`), 0o600))
	_, err = parseJSON(p)
	assert.ErrorContains(t, err, "error decoding json configs")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1s"`, string(out))
}
