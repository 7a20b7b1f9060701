package kirkpatrick

import (
	"github.com/chshersh-geo/planar/dcel"
	"github.com/chshersh-geo/planar/geom"
)

// triangulateLevel0 splits every non-triangular face of d into triangles
// by fanning diagonals out from one corner of the face, exactly as the
// teacher's first triangulation level does before any vertex is ever
// removed. It returns a map from the half-edge bounding each resulting
// triangular face to the TriNode describing it.
//
// The walk is a BFS over vertices starting at the hull's designated
// entry vertex: for every vertex v and every non-boundary, non-diagonal,
// not-yet-processed half-edge e out of v, the face on e's far side is
// fanned from v, inserting a triangle-edge diagonal between v and every
// intermediate corner of that face.
func triangulateLevel0(d *dcel.DCEL) map[dcel.EdgeID]*TriNode {
	nodes := make(map[dcel.EdgeID]*TriNode)
	visited := make(map[dcel.VertexID]bool)
	binded := make(map[dcel.EdgeID]bool)

	start := d.EntryVertex()
	queue := []dcel.VertexID{start}
	visited[start] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		startEdge := d.Vertex(v).Edge
		e := startEdge
		for {
			eRec := d.Edge(e)
			if eRec.HullEdge || eRec.TriangleEdge || binded[e] {
				binded[e] = true
			} else {
				binded[e] = true
				fanFace(d, nodes, visited, &queue, v, e)
			}

			e = d.Edge(d.Edge(e).Twin).Next
			if e == startEdge {
				break
			}
		}
	}

	return nodes
}

func fanFace(d *dcel.DCEL, nodes map[dcel.EdgeID]*TriNode, visited map[dcel.VertexID]bool, queue *[]dcel.VertexID, v dcel.VertexID, e dcel.EdgeID) {
	lastEdge := e
	f := d.Edge(e).Next

	for {
		fRec := d.Edge(f)
		if !visited[fRec.Origin] {
			visited[fRec.Origin] = true
			*queue = append(*queue, fRec.Origin)
		}

		recordFaceTriangle(d, nodes, v, f)

		nextF := fRec.Next
		if d.Edge(d.Edge(nextF).Next).Origin == v {
			f = nextF
			break
		}

		tedge1 := d.NewEdge()
		tedge2 := d.NewEdge()

		lastPrev := d.Edge(lastEdge).Prev
		nextFOrigin := d.Edge(nextF).Origin

		d.SetOrigin(tedge1, v)
		d.SetTwin(tedge1, tedge2)
		d.SetNext(tedge1, nextF)
		d.SetPrev(tedge1, lastPrev)
		d.SetTriangleEdge(tedge1, true)

		d.SetOrigin(tedge2, nextFOrigin)
		d.SetTwin(tedge2, tedge1)
		d.SetNext(tedge2, lastEdge)
		d.SetPrev(tedge2, f)
		d.SetTriangleEdge(tedge2, true)

		d.SetNext(lastPrev, tedge1)
		d.SetPrev(lastEdge, tedge2)
		d.SetNext(f, tedge2)
		d.SetPrev(nextF, tedge1)

		lastEdge = tedge1
		f = nextF
	}

	if !visited[d.Edge(f).Origin] {
		visited[d.Edge(f).Origin] = true
		*queue = append(*queue, d.Edge(f).Origin)
	}
}

func recordFaceTriangle(d *dcel.DCEL, nodes map[dcel.EdgeID]*TriNode, v dcel.VertexID, f dcel.EdgeID) {
	fRec := d.Edge(f)
	vv := d.Vertex(v)
	uv := d.Vertex(fRec.Origin)
	sv := d.Vertex(d.Edge(fRec.Next).Origin)

	tri := newTriangle(
		geom.LineCross{L1: vv.Line1, L2: vv.Line2},
		geom.LineCross{L1: uv.Line1, L2: uv.Line2},
		geom.LineCross{L1: sv.Line1, L2: sv.Line2},
	)
	nodes[f] = &TriNode{Triangle: tri, Edge: f, Depth: 0}
}
