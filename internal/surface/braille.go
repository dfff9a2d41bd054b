package surface

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// dots fainter than this are not set
const brailleAlphaCutoff = 0.08

// Braille renders onto a grid of terminal cells, each holding 2x4 dots.
// Callers draw in virtual pixels; Scale virtual pixels map onto one dot.
type Braille struct {
	Cols, Rows int
	Scale      float64
	Grid       [][]rune
	colors     [][]colorful.Color
	overlay    [][]rune
	bg         colorful.Color
}

func NewBraille(cols, rows int, scale float64) *Braille {
	if scale <= 0 {
		scale = 1
	}
	b := &Braille{Cols: cols, Rows: rows, Scale: scale}
	b.Grid = make([][]rune, rows)
	b.colors = make([][]colorful.Color, rows)
	b.overlay = make([][]rune, rows)
	for i := range b.Grid {
		b.Grid[i] = make([]rune, cols)
		b.colors[i] = make([]colorful.Color, cols)
		b.overlay[i] = make([]rune, cols)
	}
	b.Clear(color.NRGBA{A: 255})
	return b
}

func (b *Braille) Size() (int, int) {
	return int(float64(b.Cols*2) * b.Scale), int(float64(b.Rows*4) * b.Scale)
}

func (b *Braille) Clear(bg color.NRGBA) {
	b.bg = toColorful(bg)
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = brailleBlank
			b.colors[i][j] = b.bg
			b.overlay[i][j] = 0
		}
	}
}

// set lights the dot at (x, y) in dot coordinates.
func (b *Braille) set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	a := float64(c.A) / 255
	if a < brailleAlphaCutoff {
		return
	}
	if b.Grid[row][col] == brailleBlank {
		b.colors[row][col] = toColorful(c)
	} else {
		b.colors[row][col] = b.colors[row][col].BlendRgb(toColorful(c), a).Clamped()
	}
	b.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (b *Braille) dot(p Point) (int, int) {
	return int(math.Floor(p.X / b.Scale)), int(math.Floor(p.Y / b.Scale))
}

func (b *Braille) StrokeLine(a, c Point, width float64, paint Paint) {
	b.line(a, c, nil, 0, paint.Representative())
}

func (b *Braille) StrokePolyline(pts []Point, width float64, dash []float64, paint Paint) {
	col := paint.Representative()
	travelled := 0.0
	for i := 1; i < len(pts); i++ {
		travelled = b.line(pts[i-1], pts[i], dash, travelled, col)
	}
}

// line draws with Bresenham's algorithm. With a dash pattern, dots in the
// gaps are skipped; the returned distance lets polylines continue the
// pattern across segments.
func (b *Braille) line(from, to Point, dash []float64, travelled float64, c color.NRGBA) float64 {
	x0, y0 := b.dot(from)
	x1, y1 := b.dot(to)
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if dashOn(dash, travelled*b.Scale) {
			b.set(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		travelled++
	}
	return travelled
}

func dashOn(dash []float64, d float64) bool {
	if len(dash) == 0 {
		return true
	}
	total := 0.0
	for _, v := range dash {
		total += v
	}
	if total <= 0 {
		return true
	}
	pos := math.Mod(d, total)
	for i, v := range dash {
		if pos < v {
			return i%2 == 0
		}
		pos -= v
	}
	return true
}

func (b *Braille) FillCircle(c Point, r float64, paint Paint) {
	b.FillEllipse(c, r, r, paint)
}

func (b *Braille) StrokeCircle(c Point, r, width float64, paint Paint) {
	col := paint.Representative()
	rd := r / b.Scale
	steps := int(math.Max(8, 2*math.Pi*rd))
	for i := 0; i < steps; i++ {
		th := 2 * math.Pi * float64(i) / float64(steps)
		b.set(int(math.Floor(c.X/b.Scale+rd*math.Cos(th))), int(math.Floor(c.Y/b.Scale+rd*math.Sin(th))), col)
	}
}

func (b *Braille) FillEllipse(c Point, rx, ry float64, paint Paint) {
	col := paint.Representative()
	cx, cy := c.X/b.Scale, c.Y/b.Scale
	rdx, rdy := rx/b.Scale, ry/b.Scale
	if rdx < 0.5 || rdy < 0.5 {
		x, y := b.dot(c)
		b.set(x, y, col)
		return
	}
	for y := int(math.Floor(cy - rdy)); y <= int(math.Ceil(cy+rdy)); y++ {
		for x := int(math.Floor(cx - rdx)); x <= int(math.Ceil(cx+rdx)); x++ {
			nx := (float64(x) + 0.5 - cx) / rdx
			ny := (float64(y) + 0.5 - cy) / rdy
			if nx*nx+ny*ny <= 1 {
				b.set(x, y, col)
			}
		}
	}
}

func (b *Braille) FillPolygon(pts []Point, paint Paint) {
	if len(pts) < 3 {
		return
	}
	col := paint.Representative()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	scaled := make([]Point, len(pts))
	for i, p := range pts {
		scaled[i] = Point{p.X / b.Scale, p.Y / b.Scale}
		minX, maxX = math.Min(minX, scaled[i].X), math.Max(maxX, scaled[i].X)
		minY, maxY = math.Min(minY, scaled[i].Y), math.Max(maxY, scaled[i].Y)
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			if insidePolygon(scaled, Point{float64(x) + 0.5, float64(y) + 0.5}) {
				b.set(x, y, col)
			}
		}
	}
}

func insidePolygon(poly []Point, p Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, c := poly[i], poly[j]
		if (a.Y > p.Y) != (c.Y > p.Y) && p.X < (c.X-a.X)*(p.Y-a.Y)/(c.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Text places s on the cell rows, overriding any dots underneath.
func (b *Braille) Text(s string, at Point, paint Paint) {
	x, y := b.dot(at)
	row := y / 4
	if row < 0 || row >= b.Rows {
		return
	}
	runes := []rune(s)
	start := x/2 - len(runes)/2
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= b.Cols {
			continue
		}
		b.overlay[row][col] = r
		b.colors[row][col] = toColorful(paint.Representative())
	}
}

// Plain returns the grid without color escapes.
func (b *Braille) Plain() string {
	var sb strings.Builder
	for row := range b.Grid {
		for col := range b.Grid[row] {
			sb.WriteRune(b.cell(row, col))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String returns the grid with each run of same-colored cells styled.
func (b *Braille) String() string {
	var sb strings.Builder
	bg := lipgloss.Color(b.bg.Hex())
	for row := range b.Grid {
		var run strings.Builder
		current := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(current)).Background(bg).Render(run.String()))
			run.Reset()
		}
		for col := range b.Grid[row] {
			hex := b.colors[row][col].Hex()
			if hex != current {
				flush()
				current = hex
			}
			run.WriteRune(b.cell(row, col))
		}
		flush()
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Braille) cell(row, col int) rune {
	if r := b.overlay[row][col]; r != 0 {
		return r
	}
	return b.Grid[row][col]
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
