package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/routeviz/internal/surface"
)

func TestGlideSnapsThenConverges(t *testing.T) {
	g := NewGlide(60)
	_, placed := g.Position()
	assert.False(t, placed)

	start := surface.Point{X: 10, Y: 10}
	assert.Equal(t, start, g.Update(start))

	target := surface.Point{X: 110, Y: 60}
	first := g.Update(target)
	assert.Greater(t, first.X, start.X)
	assert.Less(t, first.X, target.X)

	var p surface.Point
	for i := 0; i < 600; i++ {
		p = g.Update(target)
	}
	assert.InDelta(t, target.X, p.X, 0.5)
	assert.InDelta(t, target.Y, p.Y, 0.5)
}

func TestGlideForget(t *testing.T) {
	g := NewGlide(0)
	g.Update(surface.Point{X: 1, Y: 1})
	g.Forget()
	far := surface.Point{X: 500, Y: 500}
	assert.Equal(t, far, g.Update(far))
}
