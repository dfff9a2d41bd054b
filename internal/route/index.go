package route

import (
	"github.com/dhconnelly/rtreego"

	"github.com/san-kum/routeviz/internal/surface"
)

const markerTolerance = 0.5

type marker struct {
	index int
	at    surface.Point
	rect  *rtreego.Rect
}

func (m *marker) Bounds() *rtreego.Rect { return m.rect }

// Index finds the marker under a surface position. It is rebuilt whenever
// the projection changes.
type Index struct {
	tree *rtreego.Rtree
	n    int
}

// NewIndex indexes the pin heads of the projected points.
func NewIndex(pts []surface.Point) *Index {
	idx := &Index{tree: rtreego.NewTree(2, 2, 8), n: len(pts)}
	for i, p := range pts {
		head := HeadCenter(p)
		idx.tree.Insert(&marker{
			index: i,
			at:    head,
			rect:  rtreego.Point{head.X, head.Y}.ToRect(markerTolerance),
		})
	}
	return idx
}

func (idx *Index) Len() int { return idx.n }

// Nearest returns the marker whose head is closest to p, provided it lies
// within maxDist pixels.
func (idx *Index) Nearest(p surface.Point, maxDist float64) (int, bool) {
	if idx == nil || idx.n == 0 {
		return -1, false
	}
	found := idx.tree.NearestNeighbor(rtreego.Point{p.X, p.Y})
	m, ok := found.(*marker)
	if !ok || m.at.Dist(p) > maxDist {
		return -1, false
	}
	return m.index, true
}
