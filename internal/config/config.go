// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied by [GetStructuredConfig] to fields left empty by every
// configuration source.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultPollInterval   = 10 * time.Second
	DefaultRetryCount     = 2
	DefaultDSN            = "group-sync.db"
)

// StructuredConfig is the top-level configuration container for the
// go-group-sync client. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the identity of the local member and request signing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the rendezvous server address and outbound request
	// settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background poll job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the optional prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// UserID is the member identifier this client acts for.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Optional.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the rendezvous server transport.
type Adapter struct {
	// HTTPAddress is the rendezvous server address, either "host:port" or a
	// full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times idempotent requests (polls and key
	// package lookups) are retried after a transient failure.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval is the period of the incoming message poll.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Metrics holds the prometheus exposition settings.
type Metrics struct {
	// Address is the "host:port" the /metrics endpoint listens on. Empty
	// disables the endpoint.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Workers: Workers{PollInterval: DefaultPollInterval},
	}
}
