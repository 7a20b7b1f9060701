package planar

import (
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/quadtree"
	"github.com/chshersh-geo/planar/randgen"
)

// PointIndex is a skip-compressed-quadtree point set over a fixed
// bounding box.
type PointIndex struct {
	skip *quadtree.Skip
}

// NewPointIndex returns an empty index over box, using a lazily
// crypto/rand-seeded promotion source.
func NewPointIndex(box geom.Rect) *PointIndex {
	return &PointIndex{skip: quadtree.NewSkip(box, 0.5, randgen.New())}
}

// Insert adds p to the index. Points outside the index's box are
// silently dropped, matching quadtree.Skip.Insert's own ErrOutOfBounds
// contract reduced to this facade's simpler surface.
func (p *PointIndex) Insert(pt geom.Point) {
	_ = p.skip.Insert(pt)
}

// Find reports whether pt is present in the index, returning the
// compressed-quadtree node it occupies.
func (p *PointIndex) Find(pt geom.Point) (quadtree.Node, bool) {
	return p.skip.Find(pt)
}

// Range returns every indexed point within r, tolerating eps of slack at
// r's boundary.
func (p *PointIndex) Range(r geom.Rect, eps float64) []geom.Point {
	return p.skip.RangeApproxAtLevel(r, eps, 0)
}
