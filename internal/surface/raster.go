package surface

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Raster draws into an antialiased RGBA buffer.
type Raster struct {
	dc *gg.Context
}

func NewRaster(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)
	return &Raster{dc: dc}
}

func (r *Raster) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

func (r *Raster) Clear(bg color.NRGBA) {
	r.dc.SetColor(bg)
	r.dc.Clear()
}

func (r *Raster) StrokeLine(a, b Point, width float64, paint Paint) {
	r.dc.SetStrokeStyle(pattern(paint))
	r.dc.SetLineWidth(width)
	r.dc.SetDash()
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	r.dc.Stroke()
}

func (r *Raster) StrokePolyline(pts []Point, width float64, dash []float64, paint Paint) {
	if len(pts) < 2 {
		return
	}
	r.dc.SetStrokeStyle(pattern(paint))
	r.dc.SetLineWidth(width)
	r.dc.SetDash(dash...)
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.Stroke()
	r.dc.SetDash()
}

func (r *Raster) FillCircle(c Point, rad float64, paint Paint) {
	if rad <= 0 {
		return
	}
	r.dc.SetFillStyle(pattern(paint))
	r.dc.DrawCircle(c.X, c.Y, rad)
	r.dc.Fill()
}

func (r *Raster) StrokeCircle(c Point, rad, width float64, paint Paint) {
	if rad <= 0 {
		return
	}
	r.dc.SetStrokeStyle(pattern(paint))
	r.dc.SetLineWidth(width)
	r.dc.SetDash()
	r.dc.DrawCircle(c.X, c.Y, rad)
	r.dc.Stroke()
}

func (r *Raster) FillEllipse(c Point, rx, ry float64, paint Paint) {
	r.dc.SetFillStyle(pattern(paint))
	r.dc.DrawEllipse(c.X, c.Y, rx, ry)
	r.dc.Fill()
}

func (r *Raster) FillPolygon(pts []Point, paint Paint) {
	if len(pts) < 3 {
		return
	}
	r.dc.SetFillStyle(pattern(paint))
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *Raster) Text(s string, at Point, paint Paint) {
	r.dc.SetColor(paint.Representative())
	r.dc.DrawStringAnchored(s, at.X, at.Y, 0.5, 0.5)
}

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

func pattern(p Paint) gg.Pattern {
	if p.Gradient == nil {
		return gg.NewSolidPattern(p.Color)
	}
	g := p.Gradient
	var grad gg.Gradient
	if g.Kind == Radial {
		grad = gg.NewRadialGradient(g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	} else {
		grad = gg.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	}
	for _, s := range g.Stops {
		grad.AddColorStop(s.Offset, s.Color)
	}
	return grad
}
