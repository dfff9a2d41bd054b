package surface

import "math"

// DashSegments splits a polyline into the visible pieces of an on/off dash
// pattern. An empty pattern yields the segments unchanged.
func DashSegments(pts []Point, dash []float64) [][2]Point {
	var out [][2]Point
	if len(pts) < 2 {
		return out
	}
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if len(dash) == 0 || period <= 0 {
		for i := 1; i < len(pts); i++ {
			out = append(out, [2]Point{pts[i-1], pts[i]})
		}
		return out
	}

	idx, left, on := 0, dash[0], true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := a.Dist(b)
		pos := 0.0
		for pos < seg {
			step := math.Min(left, seg-pos)
			if on && step > 0 {
				out = append(out, [2]Point{lerp(a, b, pos/seg), lerp(a, b, (pos+step)/seg)})
			}
			pos += step
			left -= step
			if left <= 0 {
				idx = (idx + 1) % len(dash)
				left = dash[idx]
				on = idx%2 == 0
			}
		}
	}
	return out
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
