package client

//go:generate mockgen -destination=sync_client_mock_test.go -package=client github.com/MKhiriev/go-group-sync/internal/service SyncClient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-group-sync/internal/engine"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/service"
	"github.com/MKhiriev/go-group-sync/internal/store"
)

const shutdownTimeout = 5 * time.Second

// UI is the interactive front end driven by [App].
type UI interface {
	MainLoop(ctx context.Context) error
}

type App struct {
	sync    service.SyncClient
	ui      UI
	metrics *http.Server
	logger  *logger.Logger
}

// NewApp assembles the client runtime. metricsServer may be nil.
func NewApp(sync service.SyncClient, ui UI, metricsServer *http.Server, logger *logger.Logger) (*App, error) {
	if sync == nil || ui == nil {
		return nil, errors.New("client app: sync client and ui are required")
	}
	return &App{sync: sync, ui: ui, metrics: metricsServer, logger: logger}, nil
}

// Run restores local state, registers with the server and blocks in the UI
// until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.restore(ctx); err != nil {
		return err
	}

	if err := a.sync.Connect(ctx); err != nil {
		// the console still works offline; "sync" and "reset" retry later
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("server unreachable, background polling is off")
	}
	defer a.sync.Disconnect()

	if a.metrics != nil {
		go a.serveMetrics()
		defer a.stopMetrics()
	}

	err := a.ui.MainLoop(ctx)
	if err != nil && ctx.Err() != nil {
		// cancelled by a signal
		return nil
	}
	return err
}

// restore loads saved state. A snapshot that cannot be read is dropped and
// the client starts over with a fresh identity, which means the member has
// to be re-invited to its groups.
func (a *App) restore(ctx context.Context) error {
	err := a.sync.Restore(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrCorruptedCredentials) && !errors.Is(err, engine.ErrInvalidState) {
		return fmt.Errorf("restore: %w", err)
	}

	a.logger.Warn().Err(err).Str("func", "App.restore").
		Msg("saved state is unreadable, starting fresh; existing groups must re-invite this member")

	if err = a.sync.ClearManagerState(ctx); err != nil {
		return fmt.Errorf("clear unreadable state: %w", err)
	}
	if err = a.sync.Restore(ctx); err != nil {
		return fmt.Errorf("restore after reset: %w", err)
	}
	return nil
}

func (a *App) serveMetrics() {
	a.logger.Info().Str("func", "App.serveMetrics").Str("address", a.metrics.Addr).Msg("metrics endpoint started")
	if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Err(err).Str("func", "App.serveMetrics").Msg("metrics endpoint stopped")
	}
}

func (a *App) stopMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metrics.Shutdown(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.stopMetrics").Msg("metrics shutdown")
	}
}
