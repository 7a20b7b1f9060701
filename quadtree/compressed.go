package quadtree

import "github.com/chshersh-geo/planar/geom"

// Node is a read-only snapshot of a compressed-quadtree node, returned
// from Find so callers never see the internal *node type.
type Node struct {
	Box      geom.Rect
	IsLeaf   bool
	HasPoint bool
	Point    geom.Point
	Mask     Mask
}

type node struct {
	box      geom.Rect
	isLeaf   bool
	hasPoint bool
	point    geom.Point
	mask     Mask
	children [4]*node
}

func newNode(box geom.Rect, mask Mask) *node {
	return &node{box: box, isLeaf: true, mask: mask}
}

func (n *node) snapshot() Node {
	return Node{Box: n.box, IsLeaf: n.isLeaf, HasPoint: n.hasPoint, Point: n.point, Mask: n.mask}
}

func (n *node) quadBox(id int) geom.Rect {
	ax, ay, bx, by := geom.Quadrant(n.box.Lo.X, n.box.Lo.Y, n.box.Hi.X, n.box.Hi.Y, id)
	return geom.NewRect(ax, ay, bx, by)
}

func (n *node) quadrantOf(p geom.Point) int {
	return geom.QuadrantOf(n.box.Lo.X, n.box.Lo.Y, n.box.Hi.X, n.box.Hi.Y, p)
}

// Compressed is a path-compressed quadtree: an internal node is only
// materialized where two points' quadrant paths first diverge, so a
// single isolated point never forces a long chain of single-child boxes.
// Every node is additionally indexed by its Mask, which is the stable
// cross-level identity the Skip structure relies on to jump between
// promoted copies of "the same" node.
type Compressed struct {
	root  *node
	nodes map[Mask]*node
	box   geom.Rect
}

// NewCompressed returns an empty Compressed quadtree over box.
func NewCompressed(box geom.Rect) *Compressed {
	root := newNode(box, rootMask)
	return &Compressed{root: root, nodes: map[Mask]*node{rootMask: root}, box: box}
}

// Insert adds p to the index, starting the divergence search at the
// root. It returns ErrOutOfBounds if p is not in the tree's box.
func (t *Compressed) Insert(p geom.Point) error {
	return t.InsertFrom(rootMask, p)
}

// InsertFrom adds p starting the divergence search at the node
// identified by mask, which is how Skip drives insertion into a single
// level using a Mask located by findLowestInteresting instead of always
// walking from that level's own root.
func (t *Compressed) InsertFrom(mask Mask, p geom.Point) error {
	if !t.box.Contains(p) {
		return ErrOutOfBounds
	}
	start, ok := t.nodes[mask]
	if !ok {
		start = t.root
	}
	t.insert(start, p)
	return nil
}

func (t *Compressed) insert(n *node, p geom.Point) *node {
	if n.isLeaf {
		if !n.hasPoint {
			n.hasPoint = true
			n.point = p
			return n
		}
		if n.point == p {
			return n
		}

		existing := n.point
		n.isLeaf = false
		n.hasPoint = false

		id := n.quadrantOf(existing)
		child := newNode(n.quadBox(id), n.mask.child(id))
		child.hasPoint = true
		child.point = existing
		n.children[id] = child
		t.nodes[child.mask] = child
	}

	id := n.quadrantOf(p)
	if n.children[id] == nil {
		child := newNode(n.quadBox(id), n.mask.child(id))
		child.hasPoint = true
		child.point = p
		n.children[id] = child
		t.nodes[child.mask] = child
	} else if n.children[id].box.Contains(p) {
		n.children[id] = t.insert(n.children[id], p)
	} else {
		n.children[id] = t.spliceDivergence(n, n.children[id], p)
	}

	nonEmpty, last := 0, -1
	for i := 0; i < 4; i++ {
		if n.children[i] != nil {
			nonEmpty++
			last = i
		}
	}
	if nonEmpty == 1 {
		if n.mask != rootMask {
			delete(t.nodes, n.mask)
		}
		return n.children[last]
	}
	return n
}

// spliceDivergence handles inserting p when it lands in old's quadrant
// box but not inside old's own (smaller, already-compressed) box: it
// walks old's box downward in lockstep with p's path until the two
// diverge, inserting a fresh intermediate node exactly at that point.
func (t *Compressed) spliceDivergence(parent, old *node, p geom.Point) *node {
	box := parent.box
	mask := parent.mask
	for {
		oldID := geom.QuadrantOf(box.Lo.X, box.Lo.Y, box.Hi.X, box.Hi.Y, geom.Point{X: old.box.Lo.X, Y: old.box.Lo.Y})
		pointID := geom.QuadrantOf(box.Lo.X, box.Lo.Y, box.Hi.X, box.Hi.Y, p)
		if oldID != pointID {
			mid := newNode(box, mask)
			mid.isLeaf = false
			mid.children[oldID] = old
			t.nodes[mid.mask] = mid
			return t.insert(mid, p)
		}
		ax, ay, bx, by := geom.Quadrant(box.Lo.X, box.Lo.Y, box.Hi.X, box.Hi.Y, pointID)
		box = geom.NewRect(ax, ay, bx, by)
		mask = mask.child(pointID)
	}
}

// Find locates the node that would contain p: a leaf if p's path
// bottoms out in an existing leaf, or the deepest node on p's path
// otherwise.
func (t *Compressed) Find(p geom.Point) (Node, bool) {
	n := t.find(t.root, p)
	if n == nil {
		return Node{}, false
	}
	return n.snapshot(), n.hasPoint && n.point == p
}

func (t *Compressed) find(n *node, p geom.Point) *node {
	for i := 0; i < 4; i++ {
		c := n.children[i]
		if c != nil && c.box.Contains(p) {
			return t.find(c, p)
		}
	}
	return n
}

// findLowestInteresting returns the Mask of the deepest descendant of
// the node identified by mask whose box contains p and which is not a
// leaf, i.e. the last node on p's path that still has more than one
// point underneath it. This is the homologous-node lookup the Skip
// structure uses to avoid redescending a whole level's tree from its
// root on every insertion.
func (t *Compressed) findLowestInteresting(mask Mask, p geom.Point) Mask {
	start, ok := t.nodes[mask]
	if !ok {
		start = t.root
	}
	return t.lowestInteresting(start, p)
}

func (t *Compressed) lowestInteresting(n *node, p geom.Point) Mask {
	for i := 0; i < 4; i++ {
		c := n.children[i]
		if c != nil && c.box.Contains(p) && !c.isLeaf {
			return t.lowestInteresting(c, p)
		}
	}
	return n.mask
}

// RangeApprox returns every point within r, treating the query as
// widened by eps: any node fully inside the widened box is reported
// whole without descending further, which is what makes the query
// approximate rather than exact at the eps-wide boundary band.
func (t *Compressed) RangeApprox(r geom.Rect, eps float64) []geom.Point {
	var out []geom.Point
	epsRect := r.Expanded(eps)
	t.rangeApprox(t.root, r, epsRect, &out)
	return out
}

func (t *Compressed) rangeApprox(n *node, r, epsRect geom.Rect, out *[]geom.Point) {
	if n.isLeaf {
		if n.hasPoint && r.Contains(n.point) {
			*out = append(*out, n.point)
		}
		return
	}

	if epsRect.ContainsRect(n.box) {
		dumpAll(n, out)
		return
	}

	for i := 0; i < 4; i++ {
		c := n.children[i]
		if c != nil && c.box.Intersects(r) {
			t.rangeApprox(c, r, epsRect, out)
		}
	}
}

func dumpAll(n *node, out *[]geom.Point) {
	if n.isLeaf {
		if n.hasPoint {
			*out = append(*out, n.point)
		}
		return
	}
	for i := 0; i < 4; i++ {
		if n.children[i] != nil {
			dumpAll(n.children[i], out)
		}
	}
}
