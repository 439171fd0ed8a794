package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-xray-viewer/internal/view"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// theme is the palette of the record table.
type theme struct {
	name        string
	account     lipgloss.Style
	header      lipgloss.Style
	sortColumn  lipgloss.Style
	selected    lipgloss.Style
	highlighted lipgloss.Style
	toast       lipgloss.Style
	badges      map[string]lipgloss.Style
}

func lightTheme() theme {
	return theme{
		name:        "light",
		account:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		sortColumn:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#1d4ed8")),
		selected:    lipgloss.NewStyle().Background(lipgloss.Color("#dbeafe")).Foreground(lipgloss.Color("#111827")),
		highlighted: lipgloss.NewStyle().Background(lipgloss.Color("#fef08a")).Foreground(lipgloss.Color("#111827")),
		toast:       lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")),
		badges: map[string]lipgloss.Style{
			view.TonePrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2563eb")),
			view.ToneSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#db2777")),
		},
	}
}

func darkTheme() theme {
	return theme{
		name:        "dark",
		account:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93c5fd")),
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f3f4f6")),
		sortColumn:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#93c5fd")),
		selected:    lipgloss.NewStyle().Background(lipgloss.Color("#1e3a8a")).Foreground(lipgloss.Color("#f9fafb")),
		highlighted: lipgloss.NewStyle().Background(lipgloss.Color("#713f12")).Foreground(lipgloss.Color("#fef9c3")),
		toast:       lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac")),
		badges: map[string]lipgloss.Style{
			view.TonePrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0b1120")).Background(lipgloss.Color("#60a5fa")),
			view.ToneSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#0b1120")).Background(lipgloss.Color("#f472b6")),
		},
	}
}

func themeFor(dark bool) theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}
