// Package network draws the particle backdrop: flickering connection edges
// between nearby particles and a two-layer glow for each particle.
package network

import (
	"image/color"
	"math"

	"github.com/san-kum/routeviz/internal/particles"
	"github.com/san-kum/routeviz/internal/surface"
)

const (
	DefaultMaxDistance    = 150.0
	DefaultMinStrength    = 0.1
	DefaultLineWidthScale = 1.5
	DefaultTimeStep       = 0.01
)

// Style holds the renderer's tunables and palette.
type Style struct {
	MaxDistance    float64
	MinStrength    float64
	LineWidthScale float64

	Edge    color.NRGBA // gradient ends
	EdgeMid color.NRGBA // gradient middle
	Glow    color.NRGBA
	Core    color.NRGBA // particle center
	Deep    color.NRGBA // particle rim
}

func DefaultStyle() Style {
	return Style{
		MaxDistance:    DefaultMaxDistance,
		MinStrength:    DefaultMinStrength,
		LineWidthScale: DefaultLineWidthScale,
		Edge:           color.NRGBA{R: 30, G: 144, B: 255, A: 255},
		EdgeMid:        color.NRGBA{R: 100, G: 180, B: 255, A: 255},
		Glow:           color.NRGBA{R: 30, G: 144, B: 255, A: 255},
		Core:           color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Deep:           color.NRGBA{R: 11, G: 61, B: 145, A: 255},
	}
}

// Strength is 1 at distance 0 falling linearly to 0 at maxDist.
func Strength(d, maxDist float64) float64 {
	if d >= maxDist || maxDist <= 0 {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return 1 - d/maxDist
}

// ConnectionPhase is the time flicker applied to every edge leaving
// particle i.
func ConnectionPhase(t float64, i int) float64 {
	return math.Sin(2*t+float64(i)*0.1)*0.5 + 0.5
}

// EdgeStrength combines distance falloff with the flicker phase.
func EdgeStrength(d, maxDist, t float64, i int) float64 {
	return Strength(d, maxDist) * ConnectionPhase(t, i)
}

type Stats struct {
	Edges     int
	Particles int
}

type Renderer struct {
	Style Style
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render draws edges first and particles on top. It reads ps and t only.
func (r *Renderer) Render(s surface.Surface, ps []particles.Particle, t float64) Stats {
	st := r.Style
	var stats Stats

	for i := range ps {
		a := surface.Point{X: ps[i].X, Y: ps[i].Y}
		for j := i + 1; j < len(ps); j++ {
			b := surface.Point{X: ps[j].X, Y: ps[j].Y}
			d := a.Dist(b)
			if d >= st.MaxDistance {
				continue
			}
			f := EdgeStrength(d, st.MaxDistance, t, i)
			if f <= st.MinStrength {
				continue
			}
			s.StrokeLine(a, b, f*st.LineWidthScale, surface.LinearGradient(a, b,
				surface.ColorStop{Offset: 0, Color: surface.WithAlpha(st.Edge, f*0.3)},
				surface.ColorStop{Offset: 0.5, Color: surface.WithAlpha(st.EdgeMid, f*0.4)},
				surface.ColorStop{Offset: 1, Color: surface.WithAlpha(st.Edge, f*0.3)},
			))
			stats.Edges++
		}
	}

	for _, p := range ps {
		r.drawParticle(s, p)
		stats.Particles++
	}
	return stats
}

func (r *Renderer) drawParticle(s surface.Surface, p particles.Particle) {
	st := r.Style
	pulse := p.Pulse()
	c := surface.Point{X: p.X, Y: p.Y}
	lum := p.Opacity * pulse

	glow := p.Radius * 3 * pulse
	s.FillCircle(c, glow, surface.RadialGradient(c, 0, glow,
		surface.ColorStop{Offset: 0, Color: surface.WithAlpha(st.Glow, lum*0.6)},
		surface.ColorStop{Offset: 0.5, Color: surface.WithAlpha(st.Glow, lum*0.3)},
		surface.ColorStop{Offset: 1, Color: surface.WithAlpha(st.Glow, 0)},
	))

	s.FillCircle(c, p.Radius, surface.RadialGradient(c, 0, p.Radius,
		surface.ColorStop{Offset: 0, Color: surface.WithAlpha(st.Core, lum)},
		surface.ColorStop{Offset: 0.3, Color: surface.WithAlpha(st.Glow, lum*0.9)},
		surface.ColorStop{Offset: 1, Color: surface.WithAlpha(st.Deep, lum*0.6)},
	))
}

// Clock is the global flicker time, advanced once per frame independently
// of particle phases.
type Clock struct {
	Step float64
	t    float64
}

func NewClock(step float64) *Clock {
	return &Clock{Step: step}
}

func (c *Clock) Tick() float64 {
	c.t += c.Step
	return c.t
}

func (c *Clock) Now() float64 { return c.t }
