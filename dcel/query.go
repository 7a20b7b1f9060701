package dcel

import (
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/predicate"
)

// edgeIntersectsLine reports whether l crosses half-edge e: for a ray
// this reduces to a half-plane test against the ray's supporting line
// and direction, for a bounded segment to "endpoints lie on opposite
// sides".
func (d *DCEL) edgeIntersectsLine(l geom.Line, e EdgeID) bool {
	if d.IsRay(e) {
		v := d.NotInfiniteVertex(e)
		vr := d.vertices[v]
		return predicate.RayLineIntersection(l, d.edges[e].line, vr.line1, vr.line2)
	}

	origin := d.vertices[d.edges[e].origin]
	far := d.vertices[d.edges[d.edges[e].next].origin]
	return predicate.SegmentLineIntersection(l, origin.line1, origin.line2, far.line1, far.line2)
}

// point2EdgeOrientation classifies point c against half-edge e's
// supporting boundary, used by GetFaceByPoint.
func (d *DCEL) point2EdgeOrientation(e EdgeID, c geom.Point) predicate.Orientation {
	if d.IsRay(e) {
		res := predicate.LinePosition(d.edges[e].line, c)
		v := d.vertices[d.edges[e].origin]
		rightDirected := d.edges[e].line.IsRightDirected()
		if res > 0 {
			if !v.finite {
				if rightDirected {
					return predicate.Right
				}
				return predicate.Left
			}
			if rightDirected {
				return predicate.Left
			}
			return predicate.Right
		}
		if !v.finite {
			if rightDirected {
				return predicate.Left
			}
			return predicate.Right
		}
		if rightDirected {
			return predicate.Right
		}
		return predicate.Left
	}

	v := d.vertices[d.edges[e].origin]
	u := d.vertices[d.edges[d.edges[e].next].origin]
	return predicate.PointSegmentOrientation(v.line1, v.line2, u.line1, u.line2, c)
}

// GetFaceByPoint performs the naive O(n) BFS location of the face
// containing p: a face is declared to contain p iff p lies strictly not
// right of every bounding half-edge. A point on the boundary returns the
// first face found during the BFS.
func (d *DCEL) GetFaceByPoint(p geom.Point) (EdgeID, bool) {
	if d.infNode == NoVertex {
		return NoEdge, false
	}

	visited := make([]int8, len(d.edges))
	queue := []EdgeID{d.vertices[d.infNode].edge}
	visited[queue[0]] = 1

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if visited[e] == 2 {
			continue
		}

		en := e
		allSame := true
		for {
			visited[en] = 2
			if d.point2EdgeOrientation(en, p) == predicate.Right {
				allSame = false
			}
			tw := d.edges[en].twin
			if visited[tw] == 0 {
				visited[tw] = 1
				queue = append(queue, tw)
			}
			en = d.edges[en].next
			if en == e {
				break
			}
		}

		if allSame {
			return e, true
		}
	}

	return NoEdge, false
}

// GetIntersectedEdges returns, in traversal order, every half-edge that
// line l crosses. It performs the same fan-bracket-then-walk search as
// AddLine but never mutates the DCEL.
func (d *DCEL) GetIntersectedEdges(l geom.Line) []EdgeID {
	e := d.vertices[d.infNode].edge
	el := d.edges[e].line

	var infFaceEdge EdgeID
	if signDet2(geom.Line{A: -el.B, B: el.A}, geom.Line{A: -l.B, B: l.A}) != predicate.Positive {
		infFaceEdge = e
	} else {
		f := d.edges[d.edges[e].twin].next
		fl := d.edges[f].line
		for {
			eOr := signDet2(geom.Line{A: -el.B, B: el.A}, geom.Line{A: -l.B, B: l.A})
			fOr := signDet2(geom.Line{A: -fl.B, B: fl.A}, geom.Line{A: -l.B, B: l.A})
			if eOr == predicate.Zero || (eOr != fOr && fOr != predicate.Zero) {
				break
			}
			e = f
			f = d.edges[d.edges[e].twin].next
			el = d.edges[e].line
			fl = d.edges[f].line
		}
		infFaceEdge = f
	}

	crossed := infFaceEdge
	for !d.edgeIntersectsLine(l, crossed) {
		crossed = d.edges[crossed].next
	}

	out := []EdgeID{crossed}
	faceEdge := d.edges[d.edges[crossed].twin].next
	for {
		for faceEdge != d.edges[crossed].twin && !d.edgeIntersectsLine(l, faceEdge) {
			faceEdge = d.edges[faceEdge].next
		}
		out = append(out, faceEdge)

		if faceEdge == d.edges[crossed].twin {
			break
		}
		faceEdge = d.edges[d.edges[faceEdge].twin].next
	}

	return out
}
