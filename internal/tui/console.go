// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxScrollback = 200
	maxRecall     = 50
	visibleLines  = 30
)

type consoleModel struct {
	ctx  context.Context
	cmd  *commander
	errs <-chan error

	input      textinput.Model
	scrollback []string
	recall     []string
	recallIdx  int

	busy   bool
	status string
	errMsg string
}

func newConsoleModel(ctx context.Context, cmd *commander, errs <-chan error) consoleModel {
	in := textinput.New()
	in.Prompt = promptStyle.Render("> ")
	in.Placeholder = "help"
	in.Width = 60
	in.Focus()

	return consoleModel{
		ctx:   ctx,
		cmd:   cmd,
		errs:  errs,
		input: in,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForError())
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case backgroundErrMsg:
		m.errMsg = "background sync: " + humanizeServerUnavailableError(msg.err)
		return m, m.waitForError()
	case commandDoneMsg:
		m.busy = false
		m.push(promptStyle.Render("> ") + msg.line)
		if msg.result.output != "" {
			m.push(msg.result.output)
		}
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.status = ""
		} else {
			m.errMsg = ""
			m.status = "ok"
		}
		if msg.result.quit {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.clear):
			m.scrollback = nil
			return m, nil
		case key.Matches(msg, keys.prev):
			m.recallStep(-1)
			return m, nil
		case key.Matches(msg, keys.next):
			m.recallStep(1)
			return m, nil
		case key.Matches(msg, keys.enter):
			line := strings.TrimSpace(m.input.Value())
			if line == "" || m.busy {
				return m, nil
			}
			m.input.Reset()
			m.remember(line)
			m.busy = true
			m.status = "working..."
			return m, m.cmdExecute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) View() string {
	var out strings.Builder

	lines := m.scrollback
	if len(lines) > visibleLines {
		lines = lines[len(lines)-visibleLines:]
	}
	for _, l := range lines {
		out.WriteString(l)
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(m.input.View())

	hotKeys := "enter: run │ ↑/↓: history │ ctrl+l: clear │ ctrl+c: quit"
	if m.errMsg != "" {
		hotKeys = errorStyle.Render("error: "+m.errMsg) + "\n  " + hotKeys
	} else if m.status != "" {
		hotKeys = statusStyle.Render(m.status) + "\n  " + hotKeys
	}

	return appStyle.Render(renderPage("GROUP CHAT", out.String(), hotKeys))
}

func (m consoleModel) cmdExecute(line string) tea.Cmd {
	ctx := m.ctx
	c := m.cmd

	return func() tea.Msg {
		res, err := c.execute(ctx, line)
		return commandDoneMsg{line: line, result: res, err: err}
	}
}

func (m consoleModel) waitForError() tea.Cmd {
	errs := m.errs
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return backgroundErrMsg{err: err}
	}
}

func (m *consoleModel) push(block string) {
	m.scrollback = append(m.scrollback, strings.Split(block, "\n")...)
	if over := len(m.scrollback) - maxScrollback; over > 0 {
		m.scrollback = m.scrollback[over:]
	}
}

func (m *consoleModel) remember(line string) {
	m.recall = append(m.recall, line)
	if over := len(m.recall) - maxRecall; over > 0 {
		m.recall = m.recall[over:]
	}
	m.recallIdx = len(m.recall)
}

func (m *consoleModel) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	m.recallIdx = min(max(m.recallIdx+delta, 0), len(m.recall))
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}
