package gui

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/routeviz/internal/surface"
)

const labelFontSize = 12

// Surface draws onto the current raylib frame, shifted right by OffsetX
// window pixels. It must only be used between BeginDrawing and EndDrawing.
type Surface struct {
	OffsetX float64
	w, h    int
}

func NewSurface(w, h int, offsetX float64) *Surface {
	return &Surface{OffsetX: offsetX, w: w, h: h}
}

func (s *Surface) Resize(w, h int) { s.w, s.h = w, h }

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) Clear(bg color.NRGBA) {
	rl.DrawRectangle(int32(s.OffsetX), 0, int32(s.w), int32(s.h), rlColor(bg))
}

func (s *Surface) StrokeLine(a, b surface.Point, width float64, paint surface.Paint) {
	if g := paint.Gradient; g != nil && len(g.Stops) >= 2 {
		mid := surface.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		rl.DrawLineEx(s.vec(a), s.vec(mid), float32(width), rlColor(stopAt(g, 0.25)))
		rl.DrawLineEx(s.vec(mid), s.vec(b), float32(width), rlColor(stopAt(g, 0.75)))
		return
	}
	rl.DrawLineEx(s.vec(a), s.vec(b), float32(width), rlColor(paint.Representative()))
}

func (s *Surface) StrokePolyline(pts []surface.Point, width float64, dash []float64, paint surface.Paint) {
	c := rlColor(paint.Representative())
	for _, seg := range surface.DashSegments(pts, dash) {
		rl.DrawLineEx(s.vec(seg[0]), s.vec(seg[1]), float32(width), c)
	}
}

func (s *Surface) FillCircle(c surface.Point, r float64, paint surface.Paint) {
	if r <= 0 {
		return
	}
	if g := paint.Gradient; g != nil && len(g.Stops) >= 2 {
		rl.DrawCircleGradient(int32(c.X+s.OffsetX), int32(c.Y), float32(r),
			rlColor(g.Stops[0].Color), rlColor(g.Stops[len(g.Stops)-1].Color))
		return
	}
	rl.DrawCircleV(s.vec(c), float32(r), rlColor(paint.Representative()))
}

func (s *Surface) StrokeCircle(c surface.Point, r, width float64, paint surface.Paint) {
	if r <= 0 {
		return
	}
	inner := math.Max(0, r-width/2)
	rl.DrawRing(s.vec(c), float32(inner), float32(r+width/2), 0, 360, 48, rlColor(paint.Representative()))
}

func (s *Surface) FillEllipse(c surface.Point, rx, ry float64, paint surface.Paint) {
	rl.DrawEllipse(int32(c.X+s.OffsetX), int32(c.Y), float32(rx), float32(ry), rlColor(paint.Representative()))
}

// FillPolygon fans the polygon from its first vertex. Each triangle is
// issued in both windings since raylib culls one of them.
func (s *Surface) FillPolygon(pts []surface.Point, paint surface.Paint) {
	if len(pts) < 3 {
		return
	}
	c := rlColor(paint.Representative())
	for i := 1; i+1 < len(pts); i++ {
		a, b, d := s.vec(pts[0]), s.vec(pts[i]), s.vec(pts[i+1])
		rl.DrawTriangle(a, b, d, c)
		rl.DrawTriangle(a, d, b, c)
	}
}

func (s *Surface) Text(str string, at surface.Point, paint surface.Paint) {
	w := rl.MeasureText(str, labelFontSize)
	rl.DrawText(str, int32(at.X+s.OffsetX)-w/2, int32(at.Y)-labelFontSize/2, labelFontSize, rlColor(paint.Representative()))
}

func (s *Surface) vec(p surface.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X+s.OffsetX), float32(p.Y))
}

func rlColor(c color.NRGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

// stopAt picks the gradient stop nearest to offset.
func stopAt(g *surface.Gradient, offset float64) color.NRGBA {
	best := g.Stops[0]
	for _, st := range g.Stops[1:] {
		if math.Abs(st.Offset-offset) < math.Abs(best.Offset-offset) {
			best = st
		}
	}
	return best.Color
}
