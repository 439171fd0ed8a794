package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

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
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// fitText shortens v to max cells, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:min(max, len(runes))])
	}
	for lipgloss.Width(string(runes)) > max-3 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// padRight pads v with spaces to width cells.
func padRight(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}
