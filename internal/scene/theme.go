package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/routeviz/internal/network"
	"github.com/san-kum/routeviz/internal/route"
)

// Palette is a theme written as hex strings, the way themes are authored.
type Palette struct {
	Name       string
	Background string
	Edge       string
	EdgeMid    string
	Glow       string
	Core       string
	Deep       string
	Start      string
	End        string
	Current    string
	Stop       string
	Path       string
	Text       string
	Muted      string
}

// Theme is a resolved palette ready for the renderers.
type Theme struct {
	Name       string
	Background color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Network    network.Style
	Route      route.Style
}

var Palettes = []Palette{
	{
		Name: "light", Background: "#f8fafc",
		Edge: "#1e90ff", EdgeMid: "#64b4ff", Glow: "#1e90ff", Core: "#ffffff", Deep: "#0b3d91",
		Start: "#22c55e", End: "#ef4444", Current: "#f97316", Stop: "#1e90ff", Path: "#1e90ff",
		Text: "#0f172a", Muted: "#64748b",
	},
	{
		Name: "dark", Background: "#0b1020",
		Edge: "#3b82f6", EdgeMid: "#93c5fd", Glow: "#60a5fa", Core: "#e0f2fe", Deep: "#1e3a8a",
		Start: "#4ade80", End: "#f87171", Current: "#fb923c", Stop: "#38bdf8", Path: "#7dd3fc",
		Text: "#e2e8f0", Muted: "#64748b",
	},
	{
		Name: "ocean", Background: "#001a33",
		Edge: "#00a8cc", EdgeMid: "#6fe3ff", Glow: "#0077be", Core: "#e0f0ff", Deep: "#003559",
		Start: "#00ff88", End: "#ff4444", Current: "#ffd700", Stop: "#00a8cc", Path: "#4488aa",
		Text: "#e0f0ff", Muted: "#4488aa",
	},
	{
		Name: "sunset", Background: "#2d1b2e",
		Edge: "#ff6b6b", EdgeMid: "#feca57", Glow: "#ff9ff3", Core: "#fff5f5", Deep: "#8b3a62",
		Start: "#5fd068", End: "#ff4757", Current: "#ffc048", Stop: "#ff9ff3", Path: "#feca57",
		Text: "#fff5f5", Muted: "#8b6b8c",
	},
}

// Resolve turns the hex palette into renderer styles. Bad hex values fall
// back to black rather than failing a frame.
func (p Palette) Resolve() Theme {
	ns := network.DefaultStyle()
	ns.Edge = hex(p.Edge)
	ns.EdgeMid = hex(p.EdgeMid)
	ns.Glow = hex(p.Glow)
	ns.Core = hex(p.Core)
	ns.Deep = hex(p.Deep)

	rs := route.DefaultStyle()
	rs.Start = hex(p.Start)
	rs.End = hex(p.End)
	rs.Current = hex(p.Current)
	rs.Stop = hex(p.Stop)
	rs.Path = withAlpha(hex(p.Path), 200)

	return Theme{
		Name:       p.Name,
		Background: hex(p.Background),
		Text:       hex(p.Text),
		Muted:      hex(p.Muted),
		Network:    ns,
		Route:      rs,
	}
}

// GetTheme resolves a palette by name, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, p := range Palettes {
		if p.Name == name {
			return p.Resolve()
		}
	}
	return Palettes[0].Resolve()
}

func ThemeNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// NextTheme cycles to the palette after name.
func NextTheme(name string) Theme {
	for i, p := range Palettes {
		if p.Name == name {
			return Palettes[(i+1)%len(Palettes)].Resolve()
		}
	}
	return Palettes[0].Resolve()
}

func hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
