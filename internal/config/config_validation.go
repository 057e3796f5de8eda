// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants that hold regardless of the runtime using it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: negative retry count %d", ErrInvalidAdapterConfigs, cfg.Adapter.RetryCount)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Workers.PollInterval < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.UserID) == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
