package scene

import (
	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/routeviz/internal/surface"
)

const (
	GlideFrequency = 4.0
	GlideDamping   = 0.9
)

// Glide eases the vehicle marker toward the current stop with a critically
// damped spring, one update per frame.
type Glide struct {
	spring harmonica.Spring
	pos    surface.Point
	vel    surface.Point
	placed bool
}

func NewGlide(fps int) *Glide {
	if fps <= 0 {
		fps = 60
	}
	return &Glide{spring: harmonica.NewSpring(harmonica.FPS(fps), GlideFrequency, GlideDamping)}
}

// Update moves one frame toward target and returns the new position. The
// first update snaps.
func (g *Glide) Update(target surface.Point) surface.Point {
	if !g.placed {
		g.Snap(target)
		return g.pos
	}
	g.pos.X, g.vel.X = g.spring.Update(g.pos.X, g.vel.X, target.X)
	g.pos.Y, g.vel.Y = g.spring.Update(g.pos.Y, g.vel.Y, target.Y)
	return g.pos
}

func (g *Glide) Snap(p surface.Point) {
	g.pos, g.vel, g.placed = p, surface.Point{}, true
}

// Forget makes the next update snap, e.g. after a resize.
func (g *Glide) Forget() { g.placed = false }

func (g *Glide) Position() (surface.Point, bool) { return g.pos, g.placed }
