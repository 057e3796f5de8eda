package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() ClientConfig {
	return ClientConfig{
		App:     ClientApp{UserID: "alice"},
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second, RetryCount: 2},
		Storage: ClientStorage{DB: ClientDB{DSN: "sync.db"}},
		Workers: ClientWorkers{PollInterval: time.Second},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "hash key optional", mutate: func(c *ClientConfig) { c.App.HashKey = "" }},
		{name: "no user", mutate: func(c *ClientConfig) { c.App.UserID = "  " }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no poll interval", mutate: func(c *ClientConfig) { c.Workers.PollInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
