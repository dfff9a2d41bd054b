// Package surface defines the 2D drawing operations the renderers emit and
// the backends that carry them out.
package surface

import (
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

type GradientKind int

const (
	Linear GradientKind = iota
	Radial
)

type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient describes a canvas style gradient. Linear gradients run from
// (X0,Y0) to (X1,Y1); radial gradients interpolate between the circles
// (X0,Y0,R0) and (X1,Y1,R1).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// Paint is either a solid color or a gradient.
type Paint struct {
	Color    color.NRGBA
	Gradient *Gradient
}

func Solid(c color.NRGBA) Paint { return Paint{Color: c} }

func LinearGradient(a, b Point, stops ...ColorStop) Paint {
	return Paint{Gradient: &Gradient{Kind: Linear, X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y, Stops: stops}}
}

func RadialGradient(c Point, r0, r1 float64, stops ...ColorStop) Paint {
	return Paint{Gradient: &Gradient{Kind: Radial, X0: c.X, Y0: c.Y, R0: r0, X1: c.X, Y1: c.Y, R1: r1, Stops: stops}}
}

// Representative returns one color standing in for the paint, used by
// backends that cannot shade gradients. It is the most opaque stop.
func (p Paint) Representative() color.NRGBA {
	if p.Gradient == nil || len(p.Gradient.Stops) == 0 {
		return p.Color
	}
	best := p.Gradient.Stops[0].Color
	for _, s := range p.Gradient.Stops[1:] {
		if s.Color.A > best.A {
			best = s.Color
		}
	}
	return best
}

// Surface is the drawing target. Implementations clip silently; nothing
// drawn out of bounds is an error.
type Surface interface {
	Size() (w, h int)
	Clear(bg color.NRGBA)
	StrokeLine(a, b Point, width float64, paint Paint)
	StrokePolyline(pts []Point, width float64, dash []float64, paint Paint)
	FillCircle(c Point, r float64, paint Paint)
	StrokeCircle(c Point, r, width float64, paint Paint)
	FillEllipse(c Point, rx, ry float64, paint Paint)
	FillPolygon(pts []Point, paint Paint)
	// Text draws s centered on at.
	Text(s string, at Point, paint Paint)
}

// RGBA builds a color from 0-255 channels and a 0-1 alpha, the way canvas
// rgba() strings are written.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alpha8(a)
	return c
}

func alpha8(a float64) uint8 {
	if a <= 0 || math.IsNaN(a) {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}
