// Package dcel implements the doubly-connected edge list over an
// arrangement of unbounded lines: construction from two seed lines,
// incremental line insertion, a bounding-triangle-clipped variant used by
// the Kirkpatrick hierarchy, a naive point-location walk, and a
// structurally-identical deep copy.
//
// The structure is an arena of indexed records rather than a graph of
// pointers: VertexID and EdgeID are indices into DCEL's own slices, so a
// Clone is a slice copy with no id rewriting, and every cross-reference
// survives reallocation of the backing arrays.
package dcel

import "github.com/chshersh-geo/planar/geom"

// VertexID indexes a vertex in a DCEL's arena. Ids start at 0 for the
// first vertex created, so the zero value is a valid id; callers should
// treat the sentinel NoVertex, not the zero value, as "absent".
type VertexID int32

// EdgeID indexes a half-edge in a DCEL's arena.
type EdgeID int32

// NoVertex and NoEdge are sentinel ids meaning "absent".
const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
)

type vertexRecord struct {
	line1, line2 geom.Line
	finite       bool
	edge         EdgeID
}

type edgeRecord struct {
	origin             VertexID
	twin, prev, next   EdgeID
	line               geom.Line
	hullEdge           bool
	triangleEdge       bool
}

// Vertex is a read-only snapshot of a vertex record.
type Vertex struct {
	ID           VertexID
	Line1, Line2 geom.Line
	Finite       bool
	Edge         EdgeID
}

// HalfEdge is a read-only snapshot of a half-edge record.
type HalfEdge struct {
	ID                       EdgeID
	Origin                   VertexID
	Twin, Prev, Next         EdgeID
	Line                     geom.Line
	HullEdge, TriangleEdge   bool
}

// DCEL is the arrangement's half-edge structure.
type DCEL struct {
	vertices []vertexRecord
	edges    []edgeRecord
	infNode  VertexID
	lines    []geom.Line
}

func newEmpty() *DCEL {
	return &DCEL{infNode: NoVertex}
}

func (d *DCEL) addVertex(l1, l2 geom.Line, finite bool) VertexID {
	id := VertexID(len(d.vertices))
	d.vertices = append(d.vertices, vertexRecord{line1: l1, line2: l2, finite: finite, edge: NoEdge})
	return id
}

func (d *DCEL) addEdge() EdgeID {
	id := EdgeID(len(d.edges))
	d.edges = append(d.edges, edgeRecord{twin: NoEdge, prev: NoEdge, next: NoEdge})
	return id
}

// NumVertices returns the number of vertices in the arena, including the
// single infinite vertex.
func (d *DCEL) NumVertices() int { return len(d.vertices) }

// NumEdges returns the number of half-edges in the arena (twice the
// number of geometric edges).
func (d *DCEL) NumEdges() int { return len(d.edges) }

// InfiniteVertex returns the id of the shared point at infinity.
func (d *DCEL) InfiniteVertex() VertexID { return d.infNode }

// Lines returns the sequence of lines inserted so far, in insertion
// order.
func (d *DCEL) Lines() []geom.Line {
	out := make([]geom.Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// Vertex returns a snapshot of the vertex with the given id.
func (d *DCEL) Vertex(id VertexID) Vertex {
	v := d.vertices[id]
	return Vertex{ID: id, Line1: v.line1, Line2: v.line2, Finite: v.finite, Edge: v.edge}
}

// Edge returns a snapshot of the half-edge with the given id.
func (d *DCEL) Edge(id EdgeID) HalfEdge {
	e := d.edges[id]
	return HalfEdge{
		ID: id, Origin: e.origin, Twin: e.twin, Prev: e.prev, Next: e.next,
		Line: e.line, HullEdge: e.hullEdge, TriangleEdge: e.triangleEdge,
	}
}

// IsRay reports whether half-edge e is an unbounded ray, i.e. one of its
// two endpoints is the infinite vertex.
func (d *DCEL) IsRay(e EdgeID) bool {
	origin := d.edges[e].origin
	nextOrigin := d.edges[d.edges[e].next].origin
	return !d.vertices[origin].finite || !d.vertices[nextOrigin].finite
}

// NotInfiniteVertex returns whichever endpoint of e is not the infinite
// vertex. If both endpoints of e are the infinite vertex it returns the
// infinite vertex; no such edge exists once at least two lines have been
// inserted.
func (d *DCEL) NotInfiniteVertex(e EdgeID) VertexID {
	origin := d.edges[e].origin
	if d.vertices[origin].finite {
		return origin
	}
	return d.edges[d.edges[e].next].origin
}

// Degree returns the number of half-edges originating at v.
func (d *DCEL) Degree(v VertexID) int {
	start := d.vertices[v].edge
	if start == NoEdge {
		return 0
	}
	count := 0
	e := start
	for {
		count++
		e = d.edges[e].twin
		e = d.edges[e].next
		if e == start {
			break
		}
	}
	return count
}

// NewFromTwoLines builds the arrangement of exactly two non-parallel
// lines: one interior vertex at their intersection, and eight half-edges
// forming four rays from the interior point to the shared infinite
// vertex (two per line, each doubled by its twin). It returns
// ErrParallelLine if the two lines have no unique intersection, since
// then there is no interior vertex to anchor the arrangement on.
//
// The pair is normalised so that the cross product of their direction
// vectors is positive, swapping them if needed, matching spec.md's
// construction invariant.
func NewFromTwoLines(l1, l2 geom.Line) (*DCEL, error) {
	d := newEmpty()

	a, b := l1, l2
	dax, day := a.Direction()
	dbx, dby := b.Direction()
	cross := dax*dby - day*dbx
	if cross == 0 {
		return nil, ErrParallelLine
	}
	// orientation(origin, dirA, dirB) == CG_RIGHT  <=>  cross(dirA,dirB) < 0
	if cross < 0 {
		a, b = b, a
	}

	d.infNode = d.addVertex(geom.NoLine, geom.NoLine, false)
	inner := d.addVertex(a, b, true)

	ids := make([]EdgeID, 8)
	for i := range ids {
		ids[i] = d.addEdge()
	}

	for i := 0; i < 8; i += 2 {
		d.edges[ids[i]].origin = d.infNode
		d.edges[ids[i+1]].origin = inner
		d.edges[ids[i]].twin = ids[i+1]
		d.edges[ids[i+1]].twin = ids[i]
		d.edges[ids[i]].next = ids[(i+7)%8]
		d.edges[ids[i]].prev = ids[(i+7)%8]
		d.edges[ids[i+1]].next = ids[(i+2)%8]
		d.edges[ids[i+1]].prev = ids[(i+2)%8]

		line := a
		if i%4 != 0 {
			line = b
		}
		if i >= 4 {
			line = line.Inverse()
		}
		d.edges[ids[i]].line = line
		d.edges[ids[i+1]].line = line
	}

	d.vertices[d.infNode].edge = ids[0]
	d.vertices[inner].edge = ids[1]

	d.lines = append(d.lines, a, b)
	return d, nil
}
