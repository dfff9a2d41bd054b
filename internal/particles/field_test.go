package particles

import (
	"math"
	"testing"

	"github.com/san-kum/routeviz/internal/viewport"
)

func TestInitializeCount(t *testing.T) {
	tests := []struct {
		w, h     int
		expected int
	}{
		{1920, 1080, 138},
		{800, 600, 32},
		{300, 50, 1},
		{100, 100, 0},
		{0, 600, 0},
	}

	for _, tt := range tests {
		f := NewField(DefaultParams(), 1)
		vp := viewport.NewSizer(tt.w, tt.h).Size()
		f.Initialize(vp)
		if f.Len() != tt.expected {
			t.Errorf("%dx%d: expected %d particles, got %d", tt.w, tt.h, tt.expected, f.Len())
		}
	}
}

func TestInitializeRanges(t *testing.T) {
	f := NewField(DefaultParams(), 42)
	f.Initialize(viewport.NewSizer(1280, 720).Size())

	for i, p := range f.Particles() {
		if p.X < 0 || p.X > 1280 || p.Y < 0 || p.Y > 720 {
			t.Fatalf("particle %d out of bounds: (%f, %f)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Errorf("particle %d velocity out of range: (%f, %f)", i, p.VX, p.VY)
		}
		if p.Radius < 1 || p.Radius > 3 {
			t.Errorf("particle %d radius out of range: %f", i, p.Radius)
		}
		if p.Opacity < 0.3 || p.Opacity > 0.8 {
			t.Errorf("particle %d opacity out of range: %f", i, p.Opacity)
		}
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Errorf("particle %d phase out of range: %f", i, p.Phase)
		}
	}
}

func TestAdvanceStaysInBounds(t *testing.T) {
	params := DefaultParams()
	params.MaxSpeed = 40 // large steps hit the edges constantly
	f := NewField(params, 7)
	f.Initialize(viewport.NewSizer(640, 480).Size())

	for step := 0; step < 5000; step++ {
		f.Advance()
		for i, p := range f.particles {
			if p.X < 0 || p.X > 640 || p.Y < 0 || p.Y > 480 {
				t.Fatalf("step %d: particle %d escaped to (%f, %f)", step, i, p.X, p.Y)
			}
		}
	}
}

func TestAdvanceReflects(t *testing.T) {
	f := NewField(DefaultParams(), 1)
	f.width, f.height = 100, 100
	f.seeded = true
	f.particles = []Particle{{X: 99.9, Y: 0.1, VX: 0.25, VY: -0.25}}

	f.Advance()
	p := f.particles[0]
	if p.X != 100 || p.VX != -0.25 {
		t.Errorf("expected x clamp to 100 with vx flipped, got x=%f vx=%f", p.X, p.VX)
	}
	if p.Y != 0 || p.VY != 0.25 {
		t.Errorf("expected y clamp to 0 with vy flipped, got y=%f vy=%f", p.Y, p.VY)
	}
	if math.Abs(p.Phase-0.02) > 1e-12 {
		t.Errorf("expected phase 0.02, got %f", p.Phase)
	}
}

func TestPulse(t *testing.T) {
	if got := (Particle{Phase: 0}).Pulse(); got != 0.8 {
		t.Errorf("expected 0.8, got %f", got)
	}
	if got := (Particle{Phase: math.Pi / 2}).Pulse(); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("expected 1.0, got %f", got)
	}
}

func TestSyncReseedsOnResize(t *testing.T) {
	sizer := viewport.NewSizer(800, 600)
	f := NewField(DefaultParams(), 3)

	if !f.Sync(sizer.Size()) {
		t.Fatal("first sync should seed")
	}
	if f.Sync(sizer.Size()) {
		t.Error("sync without resize should not reseed")
	}

	sizer.Resize(1600, 1200)
	if !f.Sync(sizer.Size()) {
		t.Fatal("sync after resize should reseed")
	}
	if f.Len() != 128 {
		t.Errorf("expected 128 particles after resize, got %d", f.Len())
	}
	w, h := f.Bounds()
	if w != 1600 || h != 1200 {
		t.Errorf("expected bounds 1600x1200, got %fx%f", w, h)
	}
}

func TestEmptyViewportInert(t *testing.T) {
	f := NewField(DefaultParams(), 1)
	f.Step(viewport.NewSizer(0, 0).Size())
	if f.Len() != 0 {
		t.Errorf("expected no particles, got %d", f.Len())
	}
	f.Advance()
}

func TestParticlesReturnsCopy(t *testing.T) {
	f := NewField(DefaultParams(), 1)
	f.Initialize(viewport.NewSizer(800, 600).Size())
	ps := f.Particles()
	ps[0].X = -1000
	if f.particles[0].X == -1000 {
		t.Error("Particles should not expose internal state")
	}
}
