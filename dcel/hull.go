package dcel

import "github.com/chshersh-geo/planar/geom"

// EntryVertex returns the vertex the fan-walk algorithms (AddLine,
// GetIntersectedEdges, GetFaceByPoint) start from. For an arrangement
// built with NewFromTwoLines it is the genuine point at infinity; for one
// built with NewHulledFromLines it is an arbitrary corner of the
// bounding triangle, which plays the same topological role (every
// half-edge fan reachable by walking e.Twin.Next loops back to it).
func (d *DCEL) EntryVertex() VertexID { return d.infNode }

// NewHulledFromLines builds the arrangement of lines clipped to a large
// bounding triangle, with all three boundary edges flagged HullEdge.
// This resolves spec.md's §4.3/§9 open question about whether the hull
// should be symmetric in favor of full symmetry: every boundary edge,
// not just alternating ones, is marked HullEdge on both directions.
func NewHulledFromLines(lines []geom.Line) *DCEL {
	d := newEmpty()

	left := geom.Line{A: 1, B: 0, C: 0}
	down := geom.Line{A: 0, B: 1, C: 0}
	diag := geom.Line{A: 1, B: 1, C: 0}

	working := append([]geom.Line(nil), lines...)
	findBorderLine(&left, 200, 1, working)
	working = append(working, left)
	findBorderLine(&down, 200, 1, working)
	working = append(working, down)
	findBorderLine(&diag, -200, -1, working)

	edgeLines := [3]geom.Line{left, down, diag}

	v0 := d.addVertex(edgeLines[0], edgeLines[2], true) // left ∩ diag
	v1 := d.addVertex(edgeLines[0], edgeLines[1], true) // left ∩ down
	v2 := d.addVertex(edgeLines[1], edgeLines[2], true) // down ∩ diag
	vs := [3]VertexID{v0, v1, v2}

	ids := make([]EdgeID, 6)
	for i := range ids {
		ids[i] = d.addEdge()
		d.edges[ids[i]].hullEdge = true
	}

	for i := 0; i < 6; i += 2 {
		d.vertices[vs[i/2]].edge = ids[(i+4)%6]

		d.edges[ids[i]].origin = vs[((i+2)/2)%3]
		d.edges[ids[i+1]].origin = vs[i/2]

		d.edges[ids[i]].twin = ids[i+1]
		d.edges[ids[i+1]].twin = ids[i]

		d.edges[ids[i]].line = edgeLines[i/2]
		d.edges[ids[i+1]].line = edgeLines[i/2]

		d.edges[ids[i]].next = ids[(i+4)%6]
		d.edges[ids[i+1]].next = ids[(i+3)%6]

		d.edges[ids[i]].prev = ids[(i+2)%6]
		d.edges[ids[i+1]].prev = ids[(i+5)%6]
	}

	d.infNode = vs[0]

	for _, l := range lines {
		d.AddLineInTriangle(l)
	}

	return d
}

// findBorderLine grows the offset of a candidate bounding line, moving it
// outward by d each iteration (in the direction sign indicates), until
// every pair of non-parallel lines in the given set agrees that l is
// strictly on the outward side of their intersection.
func findBorderLine(l *geom.Line, d float64, sign int, lines []geom.Line) {
	for {
		allOneSide := true
		for i := 0; i < len(lines)-1 && allOneSide; i++ {
			for j := i + 1; j < len(lines) && allOneSide; j++ {
				if signDet2(lines[i], lines[j]) == 0 {
					continue
				}
				lineSign := int(linePointSign(*l, lines[i], lines[j]))
				allOneSide = lineSign*sign > 0
			}
		}
		if allOneSide {
			return
		}
		l.C += d
	}
}
