// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_USER_ID":  "alice",
		"APP_HASH_KEY": "security_hash",
		"APP_VERSION":  "1.2.3",

		"ADAPTER_ADDRESS":         "localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_RETRY_COUNT":     "3",

		"WORKERS_POLL_INTERVAL": "1m",
		"METRICS_ADDRESS":       ":9100",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/sync.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "alice", cfg.App.UserID)
	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.RetryCount)
	assert.Equal(t, time.Minute, cfg.Workers.PollInterval)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
	assert.Equal(t, "/var/lib/sync.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_POLL_INTERVAL", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("exports variables without overriding", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(p, []byte("APP_USER_ID=from-file\nADAPTER_ADDRESS=localhost:1\n"), 0o600))

		t.Setenv("APP_USER_ID", "from-env")
		// registers cleanup so the variable set by the file does not leak
		t.Setenv("ADAPTER_ADDRESS", "")
		require.NoError(t, os.Unsetenv("ADAPTER_ADDRESS"))

		require.NoError(t, loadDotEnv(p))

		assert.Equal(t, "from-env", os.Getenv("APP_USER_ID"))
		assert.Equal(t, "localhost:1", os.Getenv("ADAPTER_ADDRESS"))
	})
}
