// Package kirkpatrick builds the multi-level triangulation hierarchy
// that answers point-location queries against a line arrangement in
// O(log n) time: a sequence of progressively coarser triangulations,
// each obtained from the one below it by removing an independent set of
// low-degree vertices and retriangulating the resulting holes, linked
// into a DAG so a query descends from the single top-level triangle down
// to the leaf triangle containing it.
package kirkpatrick

import (
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/predicate"
)

// Triangle is a Kirkpatrick triangle corner triple, each corner encoded
// as the pair of lines whose intersection it is rather than a
// materialized point, exactly matching the vertex encoding dcel.DCEL
// uses internally.
type Triangle [3]geom.LineCross

func newTriangle(a, b, c geom.LineCross) Triangle {
	return Triangle{a, b, c}
}

// containsPoint reports whether display point p lies inside (or on the
// boundary of) t, used by FastLocate at the root and at every step of
// its descent.
func (t Triangle) containsPoint(p geom.Point) bool {
	l1, l2 := p.AsLines()
	return t.containsConvexPoint(l1, l2)
}

// containsConvexPoint reports whether the line-defined point (l1 ∩ l2)
// lies inside or on the boundary of t: never strictly right of any edge
// walked counter-clockwise.
func (t Triangle) containsConvexPoint(l1, l2 geom.Line) bool {
	for i := 0; i < 3; i++ {
		a, b := t[i], t[(i+1)%3]
		if predicate.Turn(a.L1, a.L2, b.L1, b.L2, l1, l2) == predicate.Right {
			return false
		}
	}
	return true
}

// containsStarPoint reports whether (l1 ∩ l2) lies strictly inside t:
// strictly left of every edge. Used to reject ears whose triangle would
// swallow the vertex being deleted (a star point must stay outside the
// replacement triangle, since it no longer exists in the new level).
func (t Triangle) containsStarPoint(l1, l2 geom.Line) bool {
	for i := 0; i < 3; i++ {
		a, b := t[i], t[(i+1)%3]
		if predicate.Turn(a.L1, a.L2, b.L1, b.L2, l1, l2) != predicate.Left {
			return false
		}
	}
	return true
}

// Intersects reports whether t and o share any point, used to decide
// which old-level triangles should become children of a new-level
// triangle in the location DAG.
func (t Triangle) Intersects(o Triangle) bool {
	for i := 0; i < 3; i++ {
		if t.containsConvexPoint(o[i].L1, o[i].L2) {
			return true
		}
	}
	for i := 0; i < 3; i++ {
		if o.containsConvexPoint(t[i].L1, t[i].L2) {
			return true
		}
	}

	for i := 0; i < 3; i++ {
		t1l1, t1l2 := t[i], t[(i+1)%3]
		for j := 0; j < 3; j++ {
			t2l1, t2l2 := o[j], o[(j+1)%3]

			turn1 := predicate.Turn(t1l1.L1, t1l1.L2, t1l2.L1, t1l2.L2, t2l1.L1, t2l1.L2)
			turn2 := predicate.Turn(t1l1.L1, t1l1.L2, t1l2.L1, t1l2.L2, t2l2.L1, t2l2.L2)

			if turn1 == turn2 && turn1 == predicate.Collinear {
				xMinA, xMaxA := t1l1, t1l2
				if predicate.XDiff(xMinA.L1, xMinA.L2, xMaxA.L1, xMaxA.L2) > 0 {
					xMinA, xMaxA = xMaxA, xMinA
				}
				xMinB, xMaxB := t2l1, t2l2
				if predicate.XDiff(xMinB.L1, xMinB.L2, xMaxB.L1, xMaxB.L2) > 0 {
					xMinB, xMaxB = xMaxB, xMinB
				}

				bound1 := predicate.XDiff(t2l1.L1, t2l1.L2, xMinA.L1, xMinA.L2) >= 0 &&
					predicate.XDiff(t2l1.L1, t2l1.L2, xMaxA.L1, xMaxA.L2) <= 0
				bound2 := predicate.XDiff(t2l2.L1, t2l2.L2, xMinA.L1, xMinA.L2) >= 0 &&
					predicate.XDiff(t2l2.L1, t2l2.L2, xMaxA.L1, xMaxA.L2) <= 0
				bound3 := predicate.XDiff(t1l1.L1, t1l1.L2, xMinB.L1, xMinB.L2) >= 0 &&
					predicate.XDiff(t1l1.L1, t1l1.L2, xMaxB.L1, xMaxB.L2) <= 0
				bound4 := predicate.XDiff(t1l2.L1, t1l2.L2, xMinB.L1, xMinB.L2) >= 0 &&
					predicate.XDiff(t1l2.L1, t1l2.L2, xMaxB.L1, xMaxB.L2) <= 0

				if bound1 || bound2 || bound3 || bound4 {
					return true
				}
			} else if turn1 != turn2 {
				turn3 := predicate.Turn(t2l1.L1, t2l1.L2, t2l2.L1, t2l2.L2, t1l1.L1, t1l1.L2)
				turn4 := predicate.Turn(t2l1.L1, t2l1.L2, t2l2.L1, t2l2.L2, t1l2.L1, t1l2.L2)
				if turn3 != turn4 {
					return true
				}
			}
		}
	}

	return false
}
