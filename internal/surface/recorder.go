package surface

import "image/color"

type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpPolyline
	OpFillCircle
	OpStrokeCircle
	OpEllipse
	OpPolygon
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpPolyline:
		return "polyline"
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeCircle:
		return "stroke-circle"
	case OpEllipse:
		return "ellipse"
	case OpPolygon:
		return "polygon"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Points []Point
	Radius float64
	RX, RY float64
	Width  float64
	Dash   []float64
	Paint  Paint
	Text   string
}

// Recorder keeps every drawing call in order. It is the reference backend:
// tests assert on it and the SVG writer replays it.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(bg color.NRGBA) {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: OpClear, Paint: Solid(bg)})
}

func (r *Recorder) StrokeLine(a, b Point, width float64, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []Point{a, b}, Width: width, Paint: paint})
}

func (r *Recorder) StrokePolyline(pts []Point, width float64, dash []float64, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: clonePoints(pts), Width: width, Dash: dash, Paint: paint})
}

func (r *Recorder) FillCircle(c Point, rad float64, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []Point{c}, Radius: rad, Paint: paint})
}

func (r *Recorder) StrokeCircle(c Point, rad, width float64, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Points: []Point{c}, Radius: rad, Width: width, Paint: paint})
}

func (r *Recorder) FillEllipse(c Point, rx, ry float64, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpEllipse, Points: []Point{c}, RX: rx, RY: ry, Paint: paint})
}

func (r *Recorder) FillPolygon(pts []Point, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: clonePoints(pts), Paint: paint})
}

func (r *Recorder) Text(s string, at Point, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []Point{at}, Text: s, Paint: paint})
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Replay issues every recorded op against dst.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Paint.Color)
		case OpLine:
			dst.StrokeLine(op.Points[0], op.Points[1], op.Width, op.Paint)
		case OpPolyline:
			dst.StrokePolyline(op.Points, op.Width, op.Dash, op.Paint)
		case OpFillCircle:
			dst.FillCircle(op.Points[0], op.Radius, op.Paint)
		case OpStrokeCircle:
			dst.StrokeCircle(op.Points[0], op.Radius, op.Width, op.Paint)
		case OpEllipse:
			dst.FillEllipse(op.Points[0], op.RX, op.RY, op.Paint)
		case OpPolygon:
			dst.FillPolygon(op.Points, op.Paint)
		case OpText:
			dst.Text(op.Text, op.Points[0], op.Paint)
		}
	}
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
