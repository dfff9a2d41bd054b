package surface

import (
	"fmt"
	"html"
	"image/color"
	"strings"
)

// SVG accumulates drawing calls as SVG elements.
type SVG struct {
	w, h   int
	bg     string
	defs   strings.Builder
	body   strings.Builder
	nextID int
}

func NewSVG(w, h int) *SVG {
	return &SVG{w: w, h: h}
}

func (s *SVG) Size() (int, int) { return s.w, s.h }

func (s *SVG) Clear(bg color.NRGBA) {
	s.defs.Reset()
	s.body.Reset()
	s.nextID = 0
	s.bg = fmt.Sprintf(`<rect width="100%%" height="100%%" %s/>`+"\n", s.fill(Solid(bg)))
}

func (s *SVG) StrokeLine(a, b Point, width float64, paint Paint) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%.2f" %s/>`+"\n",
		a.X, a.Y, b.X, b.Y, width, s.stroke(paint)))
}

func (s *SVG) StrokePolyline(pts []Point, width float64, dash []float64, paint Paint) {
	if len(pts) < 2 {
		return
	}
	var d strings.Builder
	for i, p := range pts {
		if i == 0 {
			d.WriteString(fmt.Sprintf("M%.1f,%.1f", p.X, p.Y))
		} else {
			d.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	dashAttr := ""
	if len(dash) > 0 {
		parts := make([]string, len(dash))
		for i, v := range dash {
			parts[i] = fmt.Sprintf("%.1f", v)
		}
		dashAttr = fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	s.body.WriteString(fmt.Sprintf(`<path fill="none" d="%s" stroke-width="%.2f" stroke-linejoin="round"%s %s/>`+"\n",
		d.String(), width, dashAttr, s.stroke(paint)))
}

func (s *SVG) FillCircle(c Point, r float64, paint Paint) {
	if r <= 0 {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" %s/>`+"\n", c.X, c.Y, r, s.fill(paint)))
}

func (s *SVG) StrokeCircle(c Point, r, width float64, paint Paint) {
	if r <= 0 {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="none" stroke-width="%.2f" %s/>`+"\n",
		c.X, c.Y, r, width, s.stroke(paint)))
}

func (s *SVG) FillEllipse(c Point, rx, ry float64, paint Paint) {
	s.body.WriteString(fmt.Sprintf(`<ellipse cx="%.1f" cy="%.1f" rx="%.2f" ry="%.2f" %s/>`+"\n", c.X, c.Y, rx, ry, s.fill(paint)))
}

func (s *SVG) FillPolygon(pts []Point, paint Paint) {
	if len(pts) < 3 {
		return
	}
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	s.body.WriteString(fmt.Sprintf(`<polygon points="%s" %s/>`+"\n", strings.Join(parts, " "), s.fill(paint)))
}

func (s *SVG) Text(str string, at Point, paint Paint) {
	c := paint.Representative()
	s.body.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="12" font-weight="bold" fill="%s">%s</text>`+"\n",
		at.X, at.Y, rgb(c), html.EscapeString(str)))
}

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.w, s.h, s.w, s.h))
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n" + s.defs.String() + "</defs>\n")
	}
	sb.WriteString(s.bg)
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

func (s *SVG) fill(p Paint) string {
	if p.Gradient != nil {
		return fmt.Sprintf(`fill="url(#%s)"`, s.gradient(p.Gradient))
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, rgb(p.Color), float64(p.Color.A)/255)
}

func (s *SVG) stroke(p Paint) string {
	if p.Gradient != nil {
		return fmt.Sprintf(`stroke="url(#%s)"`, s.gradient(p.Gradient))
	}
	return fmt.Sprintf(`stroke="%s" stroke-opacity="%.3f"`, rgb(p.Color), float64(p.Color.A)/255)
}

func (s *SVG) gradient(g *Gradient) string {
	id := fmt.Sprintf("g%d", s.nextID)
	s.nextID++
	if g.Kind == Radial {
		s.defs.WriteString(fmt.Sprintf(`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%.1f" cy="%.1f" r="%.2f" fx="%.1f" fy="%.1f" fr="%.2f">`+"\n",
			id, g.X1, g.Y1, g.R1, g.X0, g.Y0, g.R0))
	} else {
		s.defs.WriteString(fmt.Sprintf(`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f">`+"\n",
			id, g.X0, g.Y0, g.X1, g.Y1))
	}
	for _, st := range g.Stops {
		s.defs.WriteString(fmt.Sprintf(`<stop offset="%.2f" stop-color="%s" stop-opacity="%.3f"/>`+"\n",
			st.Offset, rgb(st.Color), float64(st.Color.A)/255))
	}
	if g.Kind == Radial {
		s.defs.WriteString("</radialGradient>\n")
	} else {
		s.defs.WriteString("</linearGradient>\n")
	}
	return id
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
