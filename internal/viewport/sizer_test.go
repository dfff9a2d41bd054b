package viewport

import "testing"

func TestSizerResize(t *testing.T) {
	s := NewSizer(800, 600)
	first := s.Size()
	if first.Width != 800 || first.Height != 600 {
		t.Fatalf("expected 800x600, got %dx%d", first.Width, first.Height)
	}
	if first.Generation == 0 {
		t.Error("initial size should be committed")
	}

	if s.Resize(800, 600) {
		t.Error("resize to same size should report no change")
	}
	if s.Size().Generation != first.Generation {
		t.Error("generation changed without resize")
	}

	if !s.Resize(1024, 768) {
		t.Error("expected change")
	}
	if s.Size().Generation != first.Generation+1 {
		t.Errorf("expected generation %d, got %d", first.Generation+1, s.Size().Generation)
	}
}

func TestSizerClampsNegative(t *testing.T) {
	s := NewSizer(-10, 50)
	vp := s.Size()
	if vp.Width != 0 {
		t.Errorf("expected width clamped to 0, got %d", vp.Width)
	}
	if !vp.Empty() {
		t.Error("zero width viewport should be empty")
	}
}

func TestViewportArea(t *testing.T) {
	tests := []struct {
		vp    Viewport
		area  int
		empty bool
	}{
		{Viewport{Width: 300, Height: 50}, 15000, false},
		{Viewport{Width: 0, Height: 50}, 0, true},
		{Viewport{Width: 10, Height: 0}, 0, true},
	}
	for _, tt := range tests {
		if got := tt.vp.Area(); got != tt.area {
			t.Errorf("%+v: expected area %d, got %d", tt.vp, tt.area, got)
		}
		if got := tt.vp.Empty(); got != tt.empty {
			t.Errorf("%+v: expected empty %v, got %v", tt.vp, tt.empty, got)
		}
	}
}
