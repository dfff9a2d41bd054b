// Package export writes scene frames to PNG, SVG and animated GIF.
package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/san-kum/routeviz/internal/route"
	"github.com/san-kum/routeviz/internal/scene"
	"github.com/san-kum/routeviz/internal/surface"
)

// DefaultDelay is the GIF frame delay in hundredths of a second.
const DefaultDelay = 2

var ErrNoFrames = errors.New("export: no frames")

type Options struct {
	Width, Height int
	Legend        bool
}

// Frame draws the scene once onto a fresh raster.
func Frame(sc *scene.Scene, opts Options) *surface.Raster {
	r := surface.NewRaster(opts.Width, opts.Height)
	sc.Draw(r)
	if opts.Legend && sc.Route().Len() > 0 {
		DrawLegend(r, sc.Theme())
	}
	return r
}

func PNG(w io.Writer, sc *scene.Scene, opts Options) error {
	return Frame(sc, opts).EncodePNG(w)
}

func SVG(w io.Writer, sc *scene.Scene, opts Options) error {
	s := surface.NewSVG(opts.Width, opts.Height)
	sc.Draw(s)
	if opts.Legend && sc.Route().Len() > 0 {
		DrawLegend(s, sc.Theme())
	}
	_, err := io.WriteString(w, s.String())
	return err
}

// Quantize maps a frame onto the Plan 9 palette with dithering.
func Quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}

// GIF encodes frames as a looping animation.
func GIF(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{LoopCount: 0, Image: quantizeAll(frames)}
	for range frames {
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

// DrawLegend paints the marker legend in the bottom left corner.
func DrawLegend(s surface.Surface, theme scene.Theme) {
	_, h := s.Size()
	entries := theme.Route.Legend()
	const (
		rowH  = 18.0
		boxW  = 130.0
		inset = 12.0
	)
	top := float64(h) - inset - rowH*float64(len(entries)) - 8
	s.FillPolygon([]surface.Point{
		{X: inset, Y: top},
		{X: inset + boxW, Y: top},
		{X: inset + boxW, Y: float64(h) - inset},
		{X: inset, Y: float64(h) - inset},
	}, surface.Solid(surface.WithAlpha(theme.Background, 0.85)))

	for i, e := range entries {
		y := top + 4 + rowH*float64(i) + rowH/2
		sw := surface.Point{X: inset + 14, Y: y}
		if e.Dash {
			s.StrokePolyline([]surface.Point{{X: sw.X - 8, Y: y}, {X: sw.X + 8, Y: y}}, 2, []float64{4, 3}, surface.Solid(e.Color))
		} else {
			s.FillCircle(sw, 5, surface.Solid(e.Color))
		}
		s.Text(e.Label, surface.Point{X: inset + 28 + float64(len(e.Label))*3.5, Y: y}, surface.Solid(theme.Text))
	}
}

// Preview is a convenience for single-frame renders at a chosen stop.
func Preview(sc *scene.Scene, r *route.Route, stop int, warmup int) {
	sc.SetRoute(r)
	sc.Playback().Seek(stop)
	for i := 0; i < warmup; i++ {
		sc.Step()
	}
}
