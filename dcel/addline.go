package dcel

import (
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/predicate"
)

func dirCross(a, b geom.Line) predicate.Sign {
	return signDet2(geom.Line{A: -a.B, B: a.A}, geom.Line{A: -b.B, B: b.A})
}

// AddLine inserts a new unbounded line into the arrangement, maintaining
// the invariant that every unbounded edge terminates at the single
// infinite vertex. It locates the fan edge at infinity that brackets the
// new line's direction, then walks forward splitting every edge the line
// crosses, splicing in the new line's two supporting segments (and a
// final unbounded pair closing the insertion) as it goes. Every splice is
// O(1); total work is O(k) for k crossed edges.
func (d *DCEL) AddLine(l geom.Line) {
	e := d.vertices[d.infNode].edge
	el := d.edges[e].line
	d.lines = append(d.lines, l)

	var infFaceEdge EdgeID
	if dirCross(el, l) == predicate.Negative {
		infFaceEdge = e
	} else {
		f := d.edges[d.edges[e].twin].next
		fl := d.edges[f].line
		for dirCross(el, l) == dirCross(fl, l) {
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

	crossedLine := d.edges[crossed].line
	newVertex := d.addVertex(crossedLine, l, true)

	lineEdge1 := d.addEdge()
	lineEdge2 := d.addEdge()
	partEdge1 := d.addEdge()
	partEdge2 := d.addEdge()

	d.vertices[newVertex].edge = partEdge1

	crossedNextOrigin := d.edges[d.edges[crossed].next].origin
	crossedNextIsFinite := d.vertices[crossedNextOrigin].finite

	d.edges[partEdge1].origin = newVertex
	d.edges[partEdge1].twin = d.edges[crossed].twin
	if !crossedNextIsFinite {
		d.edges[partEdge1].next = lineEdge2
	} else {
		d.edges[partEdge1].next = d.edges[crossed].next
	}
	d.edges[partEdge1].prev = lineEdge2
	d.edges[partEdge1].line = crossedLine

	d.edges[partEdge2].origin = newVertex
	d.edges[partEdge2].twin = crossed
	d.edges[partEdge2].next = d.edges[d.edges[crossed].twin].next
	d.edges[partEdge2].line = crossedLine

	d.edges[lineEdge1].origin = newVertex
	d.edges[lineEdge1].twin = lineEdge2
	d.edges[lineEdge1].next = infFaceEdge
	d.edges[lineEdge1].prev = crossed
	d.edges[lineEdge1].line = l

	d.edges[lineEdge2].origin = d.infNode
	d.edges[lineEdge2].twin = lineEdge1
	d.edges[lineEdge2].next = partEdge1
	if !crossedNextIsFinite {
		d.edges[lineEdge2].prev = partEdge1
	} else {
		d.edges[lineEdge2].prev = d.edges[infFaceEdge].prev
	}
	d.edges[lineEdge2].line = l

	if dirCross(el, l) == predicate.Negative {
		d.vertices[d.infNode].edge = lineEdge2
	}

	faceEdge := d.edges[d.edges[crossed].twin].next
	if crossedNextIsFinite {
		d.edges[d.edges[crossed].next].prev = partEdge1
		d.edges[d.edges[infFaceEdge].prev].next = lineEdge2
	}
	d.edges[infFaceEdge].prev = lineEdge1

	d.edges[crossed].next = lineEdge1
	d.edges[d.edges[crossed].twin].twin = partEdge1
	d.edges[crossed].twin = partEdge2

	for {
		lineEdge1 = d.addEdge()
		lineEdge2 = d.addEdge()

		d.edges[lineEdge1].twin = lineEdge2
		d.edges[lineEdge1].next = partEdge2
		d.edges[lineEdge1].line = l

		d.edges[lineEdge2].origin = newVertex
		d.edges[lineEdge2].twin = lineEdge1
		d.edges[lineEdge2].prev = d.edges[partEdge1].twin
		d.edges[lineEdge2].line = l

		for faceEdge != d.edges[partEdge1].twin && !d.edgeIntersectsLine(l, faceEdge) {
			faceEdge = d.edges[faceEdge].next
		}

		if faceEdge == d.edges[partEdge1].twin {
			d.edges[d.edges[partEdge1].twin].next = partEdge2
			d.edges[d.edges[partEdge2].next].prev = partEdge2

			for d.vertices[d.edges[faceEdge].origin].finite {
				faceEdge = d.edges[faceEdge].next
			}
			infFaceEdge = faceEdge

			d.edges[d.edges[partEdge1].twin].next = lineEdge2
			d.edges[partEdge2].prev = lineEdge1

			revLine := l.Inverse()
			d.edges[lineEdge1].line = revLine
			d.edges[lineEdge2].line = revLine

			d.edges[lineEdge1].origin = d.infNode
			d.edges[lineEdge1].prev = d.edges[infFaceEdge].prev
			d.edges[lineEdge2].next = infFaceEdge

			d.edges[d.edges[infFaceEdge].prev].next = lineEdge1
			d.edges[infFaceEdge].prev = lineEdge2

			break
		}

		d.edges[d.edges[partEdge1].twin].next = lineEdge2
		d.edges[partEdge2].prev = lineEdge1
		d.edges[d.edges[partEdge2].next].prev = partEdge2

		faceLine := d.edges[faceEdge].line
		newVertex2 := d.addVertex(faceLine, l, true)

		newPartEdge1 := d.addEdge()
		newPartEdge2 := d.addEdge()

		d.edges[lineEdge1].prev = faceEdge
		d.edges[lineEdge2].next = newPartEdge1
		d.edges[lineEdge1].origin = newVertex2

		d.vertices[newVertex2].edge = newPartEdge2

		d.edges[newPartEdge1].origin = newVertex2
		d.edges[newPartEdge1].twin = d.edges[faceEdge].twin
		d.edges[newPartEdge1].next = d.edges[faceEdge].next
		d.edges[newPartEdge1].prev = lineEdge2
		d.edges[newPartEdge1].line = faceLine

		d.edges[newPartEdge2].origin = newVertex2
		d.edges[newPartEdge2].twin = faceEdge
		d.edges[newPartEdge2].next = d.edges[d.edges[faceEdge].twin].next
		d.edges[newPartEdge2].line = faceLine

		d.edges[d.edges[faceEdge].next].prev = newPartEdge1
		d.edges[d.edges[faceEdge].twin].next = newPartEdge2
		d.edges[faceEdge].next = lineEdge1
		d.edges[d.edges[faceEdge].twin].twin = newPartEdge1
		d.edges[faceEdge].twin = newPartEdge2

		crossed = faceEdge
		faceEdge = d.edges[d.edges[crossed].twin].next
		newVertex = newVertex2
		partEdge1 = newPartEdge1
		partEdge2 = newPartEdge2
	}
}

// AddLineInTriangle inserts a new line into a hull-clipped arrangement.
// It is topologically identical to AddLine except that both terminating
// edges land on hull half-edges rather than at the infinite vertex.
func (d *DCEL) AddLineInTriangle(l geom.Line) {
	crossed := d.vertices[d.infNode].edge
	for !d.edgeIntersectsLine(l, crossed) {
		crossed = d.edges[crossed].next
	}

	crossedLine := d.edges[crossed].line
	newVertex := d.addVertex(crossedLine, l, true)

	partEdge1 := d.addEdge()
	partEdge2 := d.addEdge()

	d.vertices[newVertex].edge = partEdge1

	d.edges[partEdge1].origin = newVertex
	d.edges[partEdge1].twin = d.edges[crossed].twin
	d.edges[partEdge1].next = d.edges[crossed].next
	d.edges[partEdge1].prev = crossed
	d.edges[partEdge1].line = crossedLine
	d.edges[partEdge1].hullEdge = true

	d.edges[partEdge2].origin = newVertex
	d.edges[partEdge2].twin = crossed
	d.edges[partEdge2].next = d.edges[d.edges[crossed].twin].next
	d.edges[partEdge2].line = crossedLine
	d.edges[partEdge2].hullEdge = true

	faceEdge := d.edges[d.edges[crossed].twin].next
	d.edges[d.edges[crossed].next].prev = partEdge1
	d.edges[crossed].next = partEdge1
	d.edges[d.edges[partEdge2].next].prev = partEdge2
	d.edges[d.edges[crossed].twin].next = partEdge2
	d.edges[d.edges[crossed].twin].twin = partEdge1
	d.edges[crossed].twin = partEdge2

	for {
		lineEdge1 := d.addEdge()
		lineEdge2 := d.addEdge()

		d.edges[d.edges[partEdge1].twin].next = lineEdge2
		d.edges[partEdge2].prev = lineEdge1

		d.edges[lineEdge1].twin = lineEdge2
		d.edges[lineEdge1].next = partEdge2
		d.edges[lineEdge1].line = l

		d.edges[lineEdge2].origin = newVertex
		d.edges[lineEdge2].twin = lineEdge1
		d.edges[lineEdge2].prev = d.edges[partEdge1].twin
		d.edges[lineEdge2].line = l

		for faceEdge != d.edges[partEdge1].twin && !d.edgeIntersectsLine(l, faceEdge) {
			faceEdge = d.edges[faceEdge].next
		}

		faceLine := d.edges[faceEdge].line
		newVertex2 := d.addVertex(faceLine, l, true)

		newPartEdge1 := d.addEdge()
		newPartEdge2 := d.addEdge()

		d.edges[lineEdge1].origin = newVertex2
		d.edges[lineEdge1].prev = faceEdge
		d.edges[lineEdge2].next = newPartEdge1

		d.vertices[newVertex2].edge = newPartEdge2

		d.edges[newPartEdge1].origin = newVertex2
		d.edges[newPartEdge1].twin = d.edges[faceEdge].twin
		d.edges[newPartEdge1].next = d.edges[faceEdge].next
		d.edges[newPartEdge1].prev = lineEdge2
		d.edges[newPartEdge1].line = faceLine

		d.edges[newPartEdge2].origin = newVertex2
		d.edges[newPartEdge2].twin = faceEdge
		d.edges[newPartEdge2].next = d.edges[d.edges[faceEdge].twin].next
		d.edges[newPartEdge2].prev = d.edges[newPartEdge1].twin
		d.edges[newPartEdge2].line = faceLine

		d.edges[d.edges[faceEdge].next].prev = newPartEdge1
		d.edges[d.edges[newPartEdge2].next].prev = newPartEdge2
		d.edges[d.edges[faceEdge].twin].next = newPartEdge2
		d.edges[faceEdge].next = lineEdge1
		d.edges[d.edges[faceEdge].twin].twin = newPartEdge1
		d.edges[faceEdge].twin = newPartEdge2

		if d.edges[d.edges[newPartEdge1].twin].hullEdge {
			d.edges[newPartEdge2].hullEdge = true
			d.edges[newPartEdge1].hullEdge = true
			break
		}

		crossed = faceEdge
		faceEdge = d.edges[d.edges[crossed].twin].next
		newVertex = newVertex2
		partEdge1 = newPartEdge1
		partEdge2 = newPartEdge2
	}
}
