// Package config provides configuration loading, merging, and validation
// facilities for the go-group-sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated client configuration.
package config
