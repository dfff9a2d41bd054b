package network

import (
	"math"
	"testing"

	"github.com/san-kum/routeviz/internal/particles"
	"github.com/san-kum/routeviz/internal/surface"
)

func TestStrengthMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.0; d <= 150; d += 0.5 {
		s := Strength(d, 150)
		if s > prev {
			t.Fatalf("strength increased at d=%f: %f > %f", d, s, prev)
		}
		if s < 0 || s > 1 {
			t.Fatalf("strength out of range at d=%f: %f", d, s)
		}
		prev = s
	}
	if Strength(150, 150) != 0 {
		t.Error("strength at cutoff should be 0")
	}
	if Strength(400, 150) != 0 {
		t.Error("strength beyond cutoff should be 0")
	}
}

func TestConnectionPhaseRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		for tm := 0.0; tm < 10; tm += 0.37 {
			p := ConnectionPhase(tm, i)
			if p < 0 || p > 1 {
				t.Fatalf("phase out of [0,1]: t=%f i=%d p=%f", tm, i, p)
			}
		}
	}
	if got := ConnectionPhase(0, 0); got != 0.5 {
		t.Errorf("expected 0.5 at origin, got %f", got)
	}
}

// tm such that sin(2t) = 1 for i = 0
var peak = math.Pi / 4

func TestRenderEdgeCutoff(t *testing.T) {
	tests := []struct {
		name  string
		dx    float64
		edges int
	}{
		{"close", 10, 1},
		{"far", 150, 0},
		{"beyond", 200, 0},
		// strength 0.1 exactly is not drawn
		{"threshold", 135, 0},
		{"just inside", 130, 1},
	}

	r := NewRenderer(DefaultStyle())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := []particles.Particle{
				{X: 0, Y: 0, Radius: 1, Opacity: 0.5},
				{X: tt.dx, Y: 0, Radius: 1, Opacity: 0.5},
			}
			rec := surface.NewRecorder(400, 400)
			stats := r.Render(rec, ps, peak)
			if stats.Edges != tt.edges {
				t.Errorf("expected %d edges, got %d", tt.edges, stats.Edges)
			}
			if len(rec.Filter(surface.OpLine)) != tt.edges {
				t.Errorf("expected %d line ops, got %d", tt.edges, len(rec.Filter(surface.OpLine)))
			}
		})
	}
}

func TestRenderEdgeWidth(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	ps := []particles.Particle{{X: 0, Y: 0, Radius: 1}, {X: 75, Y: 0, Radius: 1}}
	rec := surface.NewRecorder(200, 200)
	r.Render(rec, ps, peak)

	lines := rec.Filter(surface.OpLine)
	if len(lines) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(lines))
	}
	// strength 0.5 at full phase
	if math.Abs(lines[0].Width-0.75) > 1e-9 {
		t.Errorf("expected width 0.75, got %f", lines[0].Width)
	}
	g := lines[0].Paint.Gradient
	if g == nil || len(g.Stops) != 3 {
		t.Fatal("expected three-stop gradient")
	}
	if g.Stops[1].Color.A <= g.Stops[0].Color.A {
		t.Error("gradient middle should be more opaque than the ends")
	}
}

func TestRenderParticleLayers(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	p := particles.Particle{X: 50, Y: 50, Radius: 2, Opacity: 0.8, Phase: math.Pi / 2}
	rec := surface.NewRecorder(100, 100)
	stats := r.Render(rec, []particles.Particle{p}, 0)

	if stats.Particles != 1 || stats.Edges != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	circles := rec.Filter(surface.OpFillCircle)
	if len(circles) != 2 {
		t.Fatalf("expected glow and core, got %d circles", len(circles))
	}
	if math.Abs(circles[0].Radius-6) > 1e-9 {
		t.Errorf("expected glow radius 6, got %f", circles[0].Radius)
	}
	if circles[1].Radius != 2 {
		t.Errorf("expected core radius 2, got %f", circles[1].Radius)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	r := NewRenderer(DefaultStyle())
	ps := []particles.Particle{{X: 1, Y: 2, VX: 0.1, Phase: 1}, {X: 3, Y: 4, VY: -0.1, Phase: 2}}
	before := append([]particles.Particle(nil), ps...)
	r.Render(surface.NewRecorder(10, 10), ps, 1)
	for i := range ps {
		if ps[i] != before[i] {
			t.Errorf("particle %d mutated: %+v -> %+v", i, before[i], ps[i])
		}
	}
}

func TestClock(t *testing.T) {
	c := NewClock(DefaultTimeStep)
	for i := 0; i < 100; i++ {
		c.Tick()
	}
	if math.Abs(c.Now()-1.0) > 1e-9 {
		t.Errorf("expected time 1.0 after 100 ticks, got %f", c.Now())
	}
}
