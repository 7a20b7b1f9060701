package kirkpatrick

import (
	"github.com/chshersh-geo/planar/dcel"
	"github.com/chshersh-geo/planar/geom"
)

// TriNode is one node of the location DAG: a triangle, the half-edge
// that bounds it in its own triangulation level, its children in the
// level below, and the depth (0 = first/finest level) it was created at.
type TriNode struct {
	Triangle Triangle
	Edge     dcel.EdgeID
	Children []*TriNode
	Depth    int
}

// Hierarchy is the built Kirkpatrick structure over one hull-clipped
// arrangement: the DCEL of every triangulation level (level 0 is the
// finest), a single root TriNode
// whose triangle covers the whole bounding hull, and the per-level lists
// of vertices removed while compressing, kept for tests and
// visualisation exactly as the original implementation retains them.
type Hierarchy struct {
	levels  []*dcel.DCEL
	root    *TriNode
	deleted [][]dcel.VertexID
}

// Root returns the hierarchy's single top-level triangle node.
func (h *Hierarchy) Root() *TriNode { return h.root }

// DeletedVertices returns, per compression level, the vertices removed
// while building that level's retriangulation — kept for visualisation
// and tests exactly as the original Kirkpatrick implementation keeps
// them.
func (h *Hierarchy) DeletedVertices() [][]dcel.VertexID {
	out := make([][]dcel.VertexID, len(h.deleted))
	for i, lvl := range h.deleted {
		out[i] = append([]dcel.VertexID(nil), lvl...)
	}
	return out
}

// Levels returns the number of triangulation levels, including the
// finest (level 0).
func (h *Hierarchy) Levels() int { return len(h.levels) }

// NaiveLocate answers the point-location query by a direct O(n) DCEL
// face walk, ignoring the hierarchy entirely. It exists as the
// ground-truth oracle FastLocate's tests check agreement against.
func (h *Hierarchy) NaiveLocate(p geom.Point) (dcel.EdgeID, bool) {
	return h.levels[0].GetFaceByPoint(p)
}

// FastLocate answers the point-location query by descending the
// location DAG from the root: at each step the first child whose
// triangle contains p (boundary included) is chosen, stopping at a leaf
// node and returning the half-edge it is currently attached to in the
// finest triangulation.
func (h *Hierarchy) FastLocate(p geom.Point) (dcel.EdgeID, bool) {
	if h.root == nil {
		return dcel.NoEdge, false
	}
	if !h.root.Triangle.containsPoint(p) {
		return dcel.NoEdge, false
	}

	node := h.root
	for len(node.Children) > 0 {
		next := node
		for _, c := range node.Children {
			if c.Triangle.containsPoint(p) {
				next = c
				break
			}
		}
		if next == node {
			break
		}
		node = next
	}

	return node.Edge, true
}
