package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	panel   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	subtle  lipgloss.Style
	playing lipgloss.Style
	paused  lipgloss.Style
	stopped lipgloss.Style
	card    lipgloss.Style
	popup   lipgloss.Style
	graph   lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 1).
			Width(panelWidth),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		playing: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		stopped: lipgloss.NewStyle().Bold(true).Foreground(t.Muted),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1).
			Width(panelWidth - 4),
		popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1).
			Width(panelWidth - 4),
		graph:  lipgloss.NewStyle().Foreground(t.Secondary),
		notice: lipgloss.NewStyle().Foreground(t.Accent).Italic(true),
	}
}

// swatch renders a legend bullet in the entry color.
func swatch(c lipgloss.Color, dash bool) string {
	glyph := "●"
	if dash {
		glyph = "╌"
	}
	return lipgloss.NewStyle().Foreground(c).Render(glyph)
}

func separator(s styles, width int) string {
	mid := width / 2
	if mid < 3 {
		return ""
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.subtle.Render(left + " ◆ " + right)
}
