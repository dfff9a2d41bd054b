package route

import (
	"image/color"
	"math"
	"strconv"

	"github.com/san-kum/routeviz/internal/surface"
)

// Pin geometry in pixels, measured from the marker anchor (the pin tip).
const (
	PinRadius    = 14.0
	PinLift      = 24.0 // anchor to pin head center
	InnerRadius  = 9.0
	PointerWidth = 10.0
	ShadowRX     = 10.0
	ShadowRY     = 4.0
	RingGap      = 4.0
	RingGrowth   = 8.0
)

type Style struct {
	Start   color.NRGBA
	End     color.NRGBA
	Current color.NRGBA
	Stop    color.NRGBA
	Path    color.NRGBA
	Shadow  color.NRGBA
	Inner   color.NRGBA

	PathWidth float64
	PathDash  []float64
}

func DefaultStyle() Style {
	return Style{
		Start:     color.NRGBA{R: 34, G: 197, B: 94, A: 255},
		End:       color.NRGBA{R: 239, G: 68, B: 68, A: 255},
		Current:   color.NRGBA{R: 249, G: 115, B: 22, A: 255},
		Stop:      color.NRGBA{R: 30, G: 144, B: 255, A: 255},
		Path:      color.NRGBA{R: 30, G: 144, B: 255, A: 200},
		Shadow:    color.NRGBA{A: 64},
		Inner:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		PathWidth: 3,
		PathDash:  []float64{10, 10},
	}
}

// Role classifies a marker for coloring.
type Role int

const (
	RoleStop Role = iota
	RoleStart
	RoleEnd
	RoleCurrent
)

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "Start Point"
	case RoleEnd:
		return "End Point"
	case RoleCurrent:
		return "Current Stop"
	}
	return "Delivery Stop"
}

// RoleOf decides the marker role; the current stop wins over start and end.
func RoleOf(i, n, current int) Role {
	switch {
	case i == current:
		return RoleCurrent
	case i == 0:
		return RoleStart
	case i == n-1:
		return RoleEnd
	}
	return RoleStop
}

func (s Style) ColorOf(r Role) color.NRGBA {
	switch r {
	case RoleStart:
		return s.Start
	case RoleEnd:
		return s.End
	case RoleCurrent:
		return s.Current
	}
	return s.Stop
}

// LegendEntry pairs a label with its swatch color.
type LegendEntry struct {
	Label string
	Color color.NRGBA
	Dash  bool
}

func (s Style) Legend() []LegendEntry {
	return []LegendEntry{
		{Label: RoleStart.String(), Color: s.Start},
		{Label: RoleStop.String(), Color: s.Stop},
		{Label: RoleEnd.String(), Color: s.End},
		{Label: RoleCurrent.String(), Color: s.Current},
		{Label: "Route Path", Color: s.Path, Dash: true},
	}
}

type Options struct {
	Current int
	Playing bool
	// Pulse in [0,1) drives the ring around the current marker.
	Pulse float64
}

type Renderer struct {
	Style Style
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render redraws the whole route: path first, then every marker in order.
// An out of range Current highlights nothing.
func (r *Renderer) Render(s surface.Surface, pts []surface.Point, opts Options) {
	if len(pts) == 0 {
		return
	}
	if len(pts) > 1 {
		s.StrokePolyline(pts, r.Style.PathWidth, r.Style.PathDash, surface.Solid(r.Style.Path))
	}
	for i, p := range pts {
		role := RoleOf(i, len(pts), opts.Current)
		r.drawMarker(s, p, i, role)
		if opts.Playing && role == RoleCurrent {
			r.drawRing(s, p, opts.Pulse)
		}
	}
}

func (r *Renderer) drawMarker(s surface.Surface, p surface.Point, i int, role Role) {
	fill := surface.Solid(r.Style.ColorOf(role))
	head := HeadCenter(p)

	s.FillEllipse(surface.Point{X: p.X, Y: p.Y + 2}, ShadowRX, ShadowRY, surface.Solid(r.Style.Shadow))
	s.FillPolygon([]surface.Point{
		{X: p.X - PointerWidth, Y: head.Y + PinRadius*0.6},
		{X: p.X + PointerWidth, Y: head.Y + PinRadius*0.6},
		{X: p.X, Y: p.Y},
	}, fill)
	s.FillCircle(head, PinRadius, fill)
	s.FillCircle(head, InnerRadius, surface.Solid(r.Style.Inner))
	s.Text(strconv.Itoa(i+1), head, fill)
}

func (r *Renderer) drawRing(s surface.Surface, p surface.Point, pulse float64) {
	pulse = pulse - math.Floor(pulse)
	c := r.Style.Current
	s.StrokeCircle(HeadCenter(p), PinRadius+RingGap+RingGrowth*pulse, 2, surface.Solid(surface.WithAlpha(c, 1-pulse)))
}

// HeadCenter is where the pin head and its label sit for an anchor point.
func HeadCenter(p surface.Point) surface.Point {
	return surface.Point{X: p.X, Y: p.Y - PinLift}
}
