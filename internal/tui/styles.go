package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	systemStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	failedStyle = lipgloss.NewStyle().Strikethrough(true)
	promptStyle = lipgloss.NewStyle().Bold(true)
)
