// Package planar is the module's public facade: Arrangement wraps the
// dcel and kirkpatrick packages into a line-arrangement point-location
// service, and PointIndex wraps quadtree.Skip into a point index, so
// callers never need to import the internal packages directly for the
// common cases.
package planar

import (
	"github.com/chshersh-geo/planar/dcel"
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/kirkpatrick"
)

// Arrangement is a growable arrangement of lines with both a naive and
// a hierarchy-accelerated point-location query.
type Arrangement struct {
	d         *dcel.DCEL
	hierarchy *kirkpatrick.Hierarchy
	stale     bool
}

// New starts an arrangement from two seed lines. It returns
// dcel.ErrParallelLine if the two lines have no unique intersection.
func New(l1, l2 geom.Line) (*Arrangement, error) {
	d, err := dcel.NewFromTwoLines(l1, l2)
	if err != nil {
		return nil, err
	}
	return &Arrangement{d: d, stale: true}, nil
}

// AddLine inserts another line into the arrangement. Any previously
// built hierarchy becomes stale; LocateFast reports (dcel.NoEdge, false)
// until BuildHierarchy runs again.
func (a *Arrangement) AddLine(l geom.Line) {
	a.d.AddLine(l)
	a.stale = true
}

// BuildHierarchy (re)builds the Kirkpatrick hierarchy over the current
// set of lines, clipped to a bounding hull, enabling LocateFast.
func (a *Arrangement) BuildHierarchy() {
	hulled := dcel.NewHulledFromLines(a.d.Lines())
	a.hierarchy = kirkpatrick.Build(hulled)
	a.stale = false
}

// LocateNaive finds the face of the arrangement containing p by a
// direct O(n) DCEL walk, always available regardless of hierarchy
// staleness.
func (a *Arrangement) LocateNaive(p geom.Point) (dcel.EdgeID, bool) {
	return a.d.GetFaceByPoint(p)
}

// LocateFast finds the face of the arrangement containing p using the
// Kirkpatrick hierarchy in O(log n) time. It returns (dcel.NoEdge, false) if no
// hierarchy has been built yet or it is stale after an AddLine call.
func (a *Arrangement) LocateFast(p geom.Point) (dcel.EdgeID, bool) {
	if a.hierarchy == nil || a.stale {
		return dcel.NoEdge, false
	}
	return a.hierarchy.FastLocate(p)
}

// IntersectedEdges returns every half-edge of the arrangement crossed by
// l, in traversal order.
func (a *Arrangement) IntersectedEdges(l geom.Line) []dcel.EdgeID {
	return a.d.GetIntersectedEdges(l)
}
