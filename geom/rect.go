package geom

// Rect is an axis-aligned box, half-open on the high side:
// [Lo.X, Hi.X) x [Lo.Y, Hi.Y). This matches the quadtree package's box
// semantics, where every node partitions its parent's box into four
// half-open quadrants with no shared boundary points.
type Rect struct {
	Lo, Hi Point
}

// NewRect builds a Rect from the low and high corners.
func NewRect(lx, ly, hx, hy float64) Rect {
	return Rect{Lo: Point{X: lx, Y: ly}, Hi: Point{X: hx, Y: hy}}
}

// Contains reports whether p lies within the half-open box.
func (r Rect) Contains(p Point) bool {
	return r.Lo.X <= p.X && p.X < r.Hi.X && r.Lo.Y <= p.Y && p.Y < r.Hi.Y
}

// Intersects reports whether r and o share any point. Unlike Contains,
// this treats both rectangles as closed, since it is used to decide
// whether recursion into a subtree can possibly find anything, not to
// test membership of a single point.
func (r Rect) Intersects(o Rect) bool {
	return r.Lo.X <= o.Hi.X && o.Lo.X <= r.Hi.X &&
		r.Lo.Y <= o.Hi.Y && o.Lo.Y <= r.Hi.Y
}

// Expanded returns r grown by eps on each of its four sides.
func (r Rect) Expanded(eps float64) Rect {
	return Rect{
		Lo: Point{X: r.Lo.X - eps, Y: r.Lo.Y - eps},
		Hi: Point{X: r.Hi.X + eps, Y: r.Hi.Y + eps},
	}
}

// ContainsRect reports whether o is fully contained in r when both are
// treated as closed boxes. This is the "fast path" test the quadtree
// range queries use to decide whether to dump an entire subtree.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Lo.X <= o.Lo.X && o.Hi.X <= r.Hi.X && r.Lo.Y <= o.Lo.Y && o.Hi.Y <= r.Hi.Y
}

// Quadrant returns the coordinates of the id'th quadrant (0=top-left,
// 1=top-right, 2=bottom-left, 3=bottom-right, using the y-down "top"
// convention the quadtree package shares with the compressed-quadtree
// reference implementation this module is grounded on) of box
// [lx,ly)-[hx,hy).
func Quadrant(lx, ly, hx, hy float64, id int) (ax, ay, bx, by float64) {
	ax, ay, bx, by = lx, ly, hx, hy
	mx := (lx + hx) / 2
	my := (ly + hy) / 2
	switch id {
	case 0:
		bx, by = mx, my
	case 1:
		ax, by = mx, my
	case 2:
		ay, bx = my, mx
	case 3:
		ax, ay = mx, my
	}
	return
}

// QuadrantOf returns which of the four quadrants of box [lx,ly)-[hx,hy)
// contains p, or -1 if p lies outside the box entirely.
func QuadrantOf(lx, ly, hx, hy float64, p Point) int {
	for i := 0; i < 4; i++ {
		ax, ay, bx, by := Quadrant(lx, ly, hx, hy, i)
		if ax <= p.X && p.X < bx && ay <= p.Y && p.Y < by {
			return i
		}
	}
	return -1
}
