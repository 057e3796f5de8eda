package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T, errs <-chan error) consoleModel {
	t.Helper()
	c, _, _ := newTestCommander(t)
	return newConsoleModel(context.Background(), c, errs)
}

func typeLine(m consoleModel, line string) consoleModel {
	m.input.SetValue(line)
	return m
}

func pressEnter(t *testing.T, m consoleModel) (consoleModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out, ok := next.(consoleModel)
	require.True(t, ok)
	return out, cmd
}

func TestConsole_EnterRunsCommand(t *testing.T) {
	m := typeLine(newTestConsole(t, nil), "help")

	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Empty(t, m.input.Value())

	msg := cmd()
	done, ok := msg.(commandDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "help", done.line)
	require.NoError(t, done.err)

	next, _ := m.Update(done)
	m = next.(consoleModel)
	assert.False(t, m.busy)
	assert.Equal(t, "ok", m.status)
	assert.Contains(t, m.View(), "send <group> <text>")
}

func TestConsole_EnterIgnoredWhileBusyOrEmpty(t *testing.T) {
	m := newTestConsole(t, nil)

	_, cmd := pressEnter(t, m)
	assert.Nil(t, cmd)

	m = typeLine(m, "help")
	m.busy = true
	_, cmd = pressEnter(t, m)
	assert.Nil(t, cmd)
}

func TestConsole_CommandErrorShown(t *testing.T) {
	m := newTestConsole(t, nil)

	next, _ := m.Update(commandDoneMsg{line: "sync", err: adapter.ErrTransport})
	m = next.(consoleModel)
	assert.Equal(t, serverUnavailable, m.errMsg)
	assert.Contains(t, m.View(), "error: "+serverUnavailable)
}

func TestConsole_QuitCommandQuits(t *testing.T) {
	m := newTestConsole(t, nil)

	_, cmd := m.Update(commandDoneMsg{line: "quit", result: commandResult{quit: true}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestConsole_CtrlCQuits(t *testing.T) {
	m := newTestConsole(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestConsole_BackgroundErrors(t *testing.T) {
	errs := make(chan error, 1)
	m := newTestConsole(t, errs)

	errs <- errors.New("poll failed")
	msg := m.waitForError()()
	bg, ok := msg.(backgroundErrMsg)
	require.True(t, ok)

	next, cmd := m.Update(bg)
	m = next.(consoleModel)
	assert.Equal(t, "background sync: poll failed", m.errMsg)
	assert.NotNil(t, cmd, "keeps listening")

	close(errs)
	assert.Nil(t, m.waitForError()())
}

func TestConsole_Recall(t *testing.T) {
	m := newTestConsole(t, nil)
	m.remember("chats")
	m.remember("invites")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(consoleModel)
	assert.Equal(t, "invites", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(consoleModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(consoleModel)
	assert.Equal(t, "chats", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(consoleModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(consoleModel)
	assert.Empty(t, m.input.Value())
}

func TestConsole_ScrollbackBounded(t *testing.T) {
	m := newTestConsole(t, nil)
	for i := 0; i < maxScrollback+10; i++ {
		m.push("line")
	}
	assert.Len(t, m.scrollback, maxScrollback)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(consoleModel)
	assert.Empty(t, m.scrollback)
}
