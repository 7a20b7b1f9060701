package quadtree

import "github.com/chshersh-geo/planar/geom"

// naiveNode is a plain recursive quadtree node: at most one point per
// leaf, no path compression, no Mask bookkeeping.
type naiveNode struct {
	box      geom.Rect
	isLeaf   bool
	hasPoint bool
	point    geom.Point
	children [4]*naiveNode
}

func newNaiveNode(box geom.Rect) *naiveNode {
	return &naiveNode{box: box, isLeaf: true}
}

// Naive is the uncompressed quadtree: every split creates all four
// children immediately below the splitting node regardless of whether
// the new subdivision is needed again, which makes Insert and Remove
// simple at the cost of long degenerate chains for clustered points.
type Naive struct {
	root *naiveNode
	box  geom.Rect
}

// NewNaive returns an empty Naive quadtree over box.
func NewNaive(box geom.Rect) *Naive {
	return &Naive{root: newNaiveNode(box), box: box}
}

// Insert adds p to the index. It returns ErrOutOfBounds if p does not lie
// in the tree's box.
func (t *Naive) Insert(p geom.Point) error {
	if !t.box.Contains(p) {
		return ErrOutOfBounds
	}
	t.root.insert(p)
	return nil
}

func (n *naiveNode) quadBox(id int) geom.Rect {
	ax, ay, bx, by := geom.Quadrant(n.box.Lo.X, n.box.Lo.Y, n.box.Hi.X, n.box.Hi.Y, id)
	return geom.NewRect(ax, ay, bx, by)
}

func (n *naiveNode) quadrantOf(p geom.Point) int {
	return geom.QuadrantOf(n.box.Lo.X, n.box.Lo.Y, n.box.Hi.X, n.box.Hi.Y, p)
}

func (n *naiveNode) insert(p geom.Point) {
	if n.isLeaf {
		if !n.hasPoint {
			n.hasPoint = true
			n.point = p
			return
		}
		if n.point == p {
			return
		}

		existing := n.point
		n.isLeaf = false
		n.hasPoint = false

		for i := 0; i < 4; i++ {
			n.children[i] = newNaiveNode(n.quadBox(i))
		}
		n.children[n.quadrantOf(existing)].insert(existing)
	}

	n.children[n.quadrantOf(p)].insert(p)
}

// Find reports whether p is present in the index.
func (t *Naive) Find(p geom.Point) bool {
	n := t.root
	for {
		if n == nil {
			return false
		}
		if n.isLeaf {
			return n.hasPoint && n.point == p
		}
		n = n.children[n.quadrantOf(p)]
	}
}

// Remove deletes p from the index if present, collapsing any subtree
// that is left empty back into a leaf. It reports whether p was found.
func (t *Naive) Remove(p geom.Point) bool {
	removed, _ := t.root.remove(p)
	return removed
}

// remove returns (removed, nowEmpty): nowEmpty tells the caller whether
// this entire subtree can be collapsed away.
func (n *naiveNode) remove(p geom.Point) (removed, nowEmpty bool) {
	if n.isLeaf {
		if n.hasPoint && n.point == p {
			n.hasPoint = false
			return true, true
		}
		return false, !n.hasPoint
	}

	id := n.quadrantOf(p)
	child := n.children[id]
	removed, childEmpty := child.remove(p)
	if !childEmpty {
		return removed, false
	}

	for i := 0; i < 4; i++ {
		c := n.children[i]
		if !c.isLeaf || c.hasPoint {
			return removed, false
		}
	}
	n.children = [4]*naiveNode{}
	n.isLeaf = true
	return removed, true
}

// RangeApprox returns every point within r, widened by eps on each side
// to tolerate floating point slack at the box's own boundary (the same
// contract as Compressed.RangeApprox and Skip.RangeApproxAtLevel).
func (t *Naive) RangeApprox(r geom.Rect, eps float64) []geom.Point {
	var out []geom.Point
	epsRect := r.Expanded(eps)
	t.root.rangeApprox(r, epsRect, &out)
	return out
}

func (n *naiveNode) rangeApprox(r, epsRect geom.Rect, out *[]geom.Point) {
	if n.isLeaf {
		if n.hasPoint && r.Contains(n.point) {
			*out = append(*out, n.point)
		}
		return
	}

	if epsRect.ContainsRect(n.box) {
		n.dumpAll(out)
		return
	}

	for i := 0; i < 4; i++ {
		c := n.children[i]
		if c != nil && c.box.Intersects(r) {
			c.rangeApprox(r, epsRect, out)
		}
	}
}

func (n *naiveNode) dumpAll(out *[]geom.Point) {
	if n.isLeaf {
		if n.hasPoint {
			*out = append(*out, n.point)
		}
		return
	}
	for i := 0; i < 4; i++ {
		if n.children[i] != nil {
			n.children[i].dumpAll(out)
		}
	}
}
