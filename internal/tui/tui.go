package tui

//go:generate mockgen -destination=sync_client_mock_test.go -package=tui github.com/MKhiriev/go-group-sync/internal/service SyncClient

import (
	"context"

	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	sync   service.SyncClient
	logger *logger.Logger
}

func New(sync service.SyncClient, logger *logger.Logger) (*TUI, error) {
	return &TUI{sync: sync, logger: logger}, nil
}

// MainLoop runs the chat console until the user quits or ctx is cancelled.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newConsoleModel(ctx, newCommander(t.sync, clipboard.WriteAll), t.sync.Errors())
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.MainLoop").Msg("console exited with error")
	}
	return err
}
