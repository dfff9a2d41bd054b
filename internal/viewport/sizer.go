// Package viewport tracks the pixel dimensions of the drawing surface.
package viewport

import "sync"

// Viewport is a committed snapshot of the surface size. Generation changes
// every time the size does, so consumers can detect a resize lazily.
type Viewport struct {
	Width      int
	Height     int
	Generation uint64
}

func (v Viewport) Area() int { return v.Width * v.Height }

// Empty reports whether either dimension is zero.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

type Sizer struct {
	mu  sync.Mutex
	cur Viewport
}

func NewSizer(w, h int) *Sizer {
	s := &Sizer{}
	s.Resize(w, h)
	return s
}

// Resize commits new dimensions. Negative values clamp to zero. It returns
// false when the size is unchanged.
func (s *Sizer) Resize(w, h int) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur.Width == w && s.cur.Height == h && s.cur.Generation != 0 {
		return false
	}
	s.cur = Viewport{Width: w, Height: h, Generation: s.cur.Generation + 1}
	return true
}

func (s *Sizer) Size() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}
