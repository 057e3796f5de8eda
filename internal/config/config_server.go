package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ServerConfig is the configuration of the local rendezvous server used for
// development and end-to-end testing.
type ServerConfig struct {
	// HTTPAddress is the host:port the server listens on.
	HTTPAddress string
	// HashKey is the HMAC key requests must be signed with. Empty disables
	// the check.
	HashKey string
}

// GetServerConfig builds the server view of the shared configuration. The
// listen address is the one clients are pointed at (ADAPTER_ADDRESS / -a).
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg, err := newServerConfig(cfg)
	if err != nil {
		return nil, err
	}
	return serverCfg, nil
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	address, err := listenAddress(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, err
	}
	return &ServerConfig{HTTPAddress: address, HashKey: cfg.App.HashKey}, nil
}

// listenAddress turns "host:port" or "http://host:port/" into "host:port".
func listenAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("%w: empty server address", ErrInvalidAdapterConfigs)
	}
	if !strings.Contains(address, "://") {
		return address, nil
	}

	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: server address %q", ErrInvalidAdapterConfigs, address)
	}
	return u.Host, nil
}
