// Package projection maps geographic coordinates onto drawing-surface pixels.
//
// The mapping is a plain linear fit of the route's bounding box into the
// padded surface, north up. It makes no attempt at a real map projection.
package projection

import (
	"math"

	"github.com/san-kum/routeviz/internal/surface"
)

const (
	DefaultPadding  = 50.0
	DefaultMinRange = 0.01
)

type LatLng struct {
	Lat, Lng float64
}

type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func (b Bounds) LatRange() float64 { return b.MaxLat - b.MinLat }
func (b Bounds) LngRange() float64 { return b.MaxLng - b.MinLng }

// BoundsOf computes the extent of coords. A zero range on either axis is
// widened to minRange, centered on the shared value.
func BoundsOf(coords []LatLng, minRange float64) Bounds {
	if len(coords) == 0 {
		return Bounds{}
	}
	if minRange <= 0 {
		minRange = DefaultMinRange
	}
	b := Bounds{
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
		MinLng: coords[0].Lng, MaxLng: coords[0].Lng,
	}
	for _, c := range coords[1:] {
		b.MinLat = math.Min(b.MinLat, c.Lat)
		b.MaxLat = math.Max(b.MaxLat, c.Lat)
		b.MinLng = math.Min(b.MinLng, c.Lng)
		b.MaxLng = math.Max(b.MaxLng, c.Lng)
	}
	if b.LatRange() == 0 {
		b.MinLat -= minRange / 2
		b.MaxLat = b.MinLat + minRange
	}
	if b.LngRange() == 0 {
		b.MinLng -= minRange / 2
		b.MaxLng = b.MinLng + minRange
	}
	return b
}

type Options struct {
	Padding  float64
	MinRange float64
}

func DefaultOptions() Options {
	return Options{Padding: DefaultPadding, MinRange: DefaultMinRange}
}

// Project maps coords into a w x h surface. Longitude grows to the right,
// latitude grows upward. Padding that leaves no room shrinks to half the
// surface on that axis.
func Project(coords []LatLng, w, h int, opts Options) []surface.Point {
	if len(coords) == 0 {
		return nil
	}
	b := BoundsOf(coords, opts.MinRange)

	padX := fitPadding(opts.Padding, float64(w))
	padY := fitPadding(opts.Padding, float64(h))
	innerW := float64(w) - 2*padX
	innerH := float64(h) - 2*padY

	out := make([]surface.Point, len(coords))
	for i, c := range coords {
		out[i] = surface.Point{
			X: padX + (c.Lng-b.MinLng)/b.LngRange()*innerW,
			Y: padY + (b.MaxLat-c.Lat)/b.LatRange()*innerH,
		}
	}
	return out
}

func fitPadding(p, extent float64) float64 {
	if p < 0 {
		p = 0
	}
	if extent <= 0 {
		return 0
	}
	return math.Min(p, extent/2)
}

// Mapper caches the last projection so hosts only recompute when the
// route or surface size changes.
type Mapper struct {
	Options Options

	key    uint64
	w, h   int
	valid  bool
	points []surface.Point
}

func NewMapper(opts Options) *Mapper {
	return &Mapper{Options: opts}
}

// Points returns the projection of coords for a w x h surface. key
// identifies the coordinate sequence; a new key forces recomputation.
func (m *Mapper) Points(key uint64, coords []LatLng, w, h int) []surface.Point {
	if m.valid && m.key == key && m.w == w && m.h == h {
		return m.points
	}
	m.points = Project(coords, w, h, m.Options)
	m.key, m.w, m.h, m.valid = key, w, h, true
	return m.points
}

// Invalidate drops the cached projection.
func (m *Mapper) Invalidate() {
	m.valid = false
	m.points = nil
}
