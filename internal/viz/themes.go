package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/routeviz/internal/scene"
)

// Theme is the panel color scheme, derived from the scene palette so the
// side panel matches the map.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

func ThemeFor(t scene.Theme) Theme {
	return Theme{
		Name:      t.Name,
		Primary:   lc(t.Route.Stop),
		Secondary: lc(t.Network.EdgeMid),
		Accent:    lc(t.Route.Current),
		Text:      lc(t.Text),
		Muted:     lc(t.Muted),
		Success:   lc(t.Route.Start),
		Warning:   lc(t.Route.Current),
		Error:     lc(t.Route.End),
	}
}

func lc(c color.NRGBA) lipgloss.Color {
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return lipgloss.Color(cf.Hex())
}
