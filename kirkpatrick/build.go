package kirkpatrick

import (
	"github.com/chshersh-geo/planar/dcel"
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/predicate"
)

// Build constructs the full location hierarchy over a hull-clipped
// arrangement: level 0 is hulled itself, triangulated in place, and each
// further level is obtained by removing an independent set of
// low-degree vertices from the level below and retriangulating the
// resulting holes, until only the three hull corners remain.
func Build(hulled *dcel.DCEL) *Hierarchy {
	h := &Hierarchy{}

	level0 := hulled.Clone()
	nodes := triangulateLevel0(level0)

	h.levels = append(h.levels, level0)
	h.deleted = append(h.deleted, nil)

	depth := 0
	curNodes := nodes
	for notTrivial(h.levels[len(h.levels)-1]) {
		depth++
		next, deletedAtLevel, nextNodes, root := compressLevel(h.levels[len(h.levels)-1], curNodes, depth)
		h.levels = append(h.levels, next)
		h.deleted = append(h.deleted, deletedAtLevel)
		curNodes = nextNodes
		if root != nil {
			h.root = root
		}
	}

	return h
}

// compressLevel produces the next, coarser triangulation level from
// prev: every reachable vertex with degree below 12 that has not
// already been consumed as a neighbor of an earlier deletion this round
// is removed and its star retriangulated, matching
// kirkpatrick_localization::compress_level.
func compressLevel(prev *dcel.DCEL, prevNodes map[dcel.EdgeID]*TriNode, depth int) (*dcel.DCEL, []dcel.VertexID, map[dcel.EdgeID]*TriNode, *TriNode) {
	d := prev.Clone()
	reachable, neighbors := reachableGraph(d)

	marked := make(map[dcel.VertexID]bool)
	var deletedVertices []dcel.VertexID
	newNodes := make(map[dcel.EdgeID]*TriNode)
	var root *TriNode

	n := d.NumVertices()
	for i := 3; i < n; i++ {
		v := dcel.VertexID(i)
		if reachable[v] && len(neighbors[v]) < 12 && !marked[v] {
			deletedVertices = append(deletedVertices, v)

			faceEdge, collected := removeVertex(d, prevNodes, v)

			r := retriangulateHole(d, faceEdge, collected, v, depth, newNodes)
			if r != nil {
				root = r
			}

			for _, u := range neighbors[v] {
				marked[u] = true
			}
		}
		marked[v] = true
	}

	return d, deletedVertices, newNodes, root
}

// removeVertex splices delV out of d's face structure, returning one
// half-edge on the boundary of the resulting hole and every old-level
// TriNode that bordered delV's star (consumed from prevNodes as it is
// found, since each triangle can only feed into the retriangulation
// once).
func removeVertex(d *dcel.DCEL, prevNodes map[dcel.EdgeID]*TriNode, delV dcel.VertexID) (dcel.EdgeID, []*TriNode) {
	startEdge := d.Vertex(delV).Edge
	faceEdge := dcel.NoEdge
	var collected []*TriNode

	e := startEdge
	for {
		eRec := d.Edge(e)
		twinHull := d.Edge(eRec.Twin).HullEdge

		if eRec.HullEdge || twinHull {
			next := d.Edge(eRec.Twin).Next
			e = next
			if e == startEdge {
				break
			}
			continue
		}

		inEdge1 := d.Edge(eRec.Twin).Prev
		inEdge2 := eRec.Next
		if faceEdge == dcel.NoEdge {
			faceEdge = inEdge2
		}

		if t1, ok := findTriangle(prevNodes, d, inEdge1); ok {
			collected = append(collected, t1)
		}
		if t2, ok := findTriangle(prevNodes, d, inEdge2); ok {
			collected = append(collected, t2)
		}

		d.SetPrev(inEdge2, inEdge1)
		d.SetNext(inEdge1, d.Edge(e).Next)
		if d.Vertex(d.Edge(inEdge2).Origin).Edge == eRec.Twin {
			d.SetVertexEdge(d.Edge(inEdge2).Origin, inEdge2)
		}

		vOrigin := d.Edge(inEdge1).Origin
		uOrigin := d.Edge(inEdge2).Origin
		farOrigin := d.Edge(d.Edge(inEdge2).Next).Origin

		vVert, uVert, farVert := d.Vertex(vOrigin), d.Vertex(uOrigin), d.Vertex(farOrigin)
		collinear := predicate.Turn(vVert.Line1, vVert.Line2, uVert.Line1, uVert.Line2, farVert.Line1, farVert.Line2) == predicate.Collinear

		if collinear && d.Degree(uOrigin) <= 2 && uOrigin != d.EntryVertex() && inEdge1 != d.Edge(inEdge2).Twin {
			if faceEdge == inEdge2 {
				faceEdge = inEdge1
			}
			d.MergeEdges(inEdge1, inEdge2)
		}

		next := d.Edge(d.Edge(e).Twin).Next
		e = next
		if e == startEdge {
			break
		}
	}

	if d.Edge(startEdge).HullEdge {
		startPrev := d.Edge(startEdge).Prev
		startTwin := d.Edge(startEdge).Twin
		startPrevTwin := d.Edge(startPrev).Twin
		d.SetNext(startTwin, startPrevTwin)
		d.SetPrev(startPrevTwin, startTwin)

		if d.Degree(delV) == 2 {
			if faceEdge == startPrevTwin {
				faceEdge = startTwin
			}
			d.MergeEdges(startPrev, startEdge)
		}
	}

	return faceEdge, collected
}

// retriangulateHole clips ears off the polygonal hole left by
// removeVertex, one triangle at a time, until the whole hole is a single
// triangular face. Each new triangle is linked as a parent of every
// collected old-level triangle it geometrically intersects, which is
// what lets FastLocate walk down from this level to the next. It returns
// the hierarchy root if this retriangulation happens to produce the
// final, whole-arrangement triangle.
func retriangulateHole(d *dcel.DCEL, faceEdge dcel.EdgeID, collected []*TriNode, delV dcel.VertexID, depth int, newNodes map[dcel.EdgeID]*TriNode) *TriNode {
	delVert := d.Vertex(delV)

	for {
		vO := d.Edge(faceEdge).Origin
		uO := d.Edge(d.Edge(faceEdge).Next).Origin
		sO := d.Edge(d.Edge(d.Edge(faceEdge).Next).Next).Origin

		vVert, uVert, sVert := d.Vertex(vO), d.Vertex(uO), d.Vertex(sO)
		tri := newTriangle(
			geom.LineCross{L1: vVert.Line1, L2: vVert.Line2},
			geom.LineCross{L1: uVert.Line1, L2: uVert.Line2},
			geom.LineCross{L1: sVert.Line1, L2: sVert.Line2},
		)
		node := &TriNode{Triangle: tri, Depth: depth}

		if isTriangleFace(d, faceEdge) {
			newNodes[faceEdge] = node
			node.Edge = faceEdge
			for _, old := range collected {
				if tri.Intersects(old.Triangle) {
					node.Children = append(node.Children, old)
				}
			}

			var root *TriNode
			if !notTrivial(d) {
				root = node
			}
			return root
		}

		isEar := predicate.Turn(vVert.Line1, vVert.Line2, uVert.Line1, uVert.Line2, sVert.Line1, sVert.Line2) == predicate.Left
		if isEar {
			walk := faceEdge
			for {
				t := d.Edge(walk).Origin
				if t != vO && t != uO && t != sO {
					tVert := d.Vertex(t)
					isEar = !tri.containsConvexPoint(tVert.Line1, tVert.Line2)
				}
				walk = d.Edge(walk).Next
				if !isEar || walk == faceEdge {
					break
				}
			}
		}

		if isEar && !tri.containsStarPoint(delVert.Line1, delVert.Line2) {
			tedge1 := d.NewEdge()
			tedge2 := d.NewEdge()

			faceNext := d.Edge(faceEdge).Next
			faceNextNext := d.Edge(faceNext).Next
			facePrev := d.Edge(faceEdge).Prev

			d.SetOrigin(tedge1, vO)
			d.SetTwin(tedge1, tedge2)
			d.SetNext(tedge1, faceNextNext)
			d.SetPrev(tedge1, facePrev)
			d.SetTriangleEdge(tedge1, true)

			d.SetOrigin(tedge2, sO)
			d.SetTwin(tedge2, tedge1)
			d.SetNext(tedge2, faceEdge)
			d.SetPrev(tedge2, faceNext)
			d.SetTriangleEdge(tedge2, true)

			d.SetNext(facePrev, tedge1)
			d.SetPrev(faceEdge, tedge2)
			d.SetPrev(faceNextNext, tedge1)
			d.SetNext(faceNext, tedge2)

			for _, old := range collected {
				if tri.Intersects(old.Triangle) {
					node.Children = append(node.Children, old)
				}
			}
			newNodes[faceEdge] = node
			node.Edge = faceEdge

			faceEdge = tedge1
		} else {
			faceEdge = d.Edge(faceEdge).Next
		}
	}
}
