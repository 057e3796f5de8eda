package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-group-sync/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const shortIDLen = 8

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

func renderEntry(e models.TranscriptEntry) string {
	ts := e.CreatedAt.Format("15:04")
	switch e.Kind {
	case models.EntrySystem:
		return systemStyle.Render(fmt.Sprintf("%s  * %s", ts, e.Text))
	case models.EntryFailed:
		return failedStyle.Render(fmt.Sprintf("%s  %s: %s (not sent)", ts, e.SenderID, e.Text))
	default:
		return fmt.Sprintf("%s #%-4d %s: %s", ts, e.GlobalIndex, e.SenderID, e.Text)
	}
}

func shortID(id models.GroupID) string {
	s := id.String()
	if len(s) > shortIDLen {
		return s[:shortIDLen]
	}
	return s
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
