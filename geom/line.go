// Package geom holds the stateless geometric primitives shared by dcel,
// kirkpatrick and quadtree: oriented lines, display points, axis-aligned
// rectangles and the line-pair vertex encoding the predicate cascade
// operates on.
package geom

// Line is the oriented line A*x + B*y + C = 0. The invariant (A, B) !=
// (0, 0) is the caller's responsibility; Line itself performs no
// validation (geometry construction, like the rest of this module,
// trusts its internal callers and only enforces preconditions at the
// package surfaces that accept external input).
type Line struct {
	A, B, C float64
}

// NoLine is the zero-valued sentinel line used to mark "no second line"
// contexts; it never satisfies the (A,B) != (0,0) invariant and is only
// ever compared by identity through a separate boolean flag, never by
// value.
var NoLine = Line{}

// Direction returns the line's direction vector (-B, A).
func (l Line) Direction() (dx, dy float64) {
	return -l.B, l.A
}

// Normal returns the line's normal vector (A, B).
func (l Line) Normal() (nx, ny float64) {
	return l.A, l.B
}

// Inverse returns the line with all three coefficients negated. This
// flips the directed side of the line but leaves its point set
// unchanged.
func (l Line) Inverse() Line {
	return Line{A: -l.A, B: -l.B, C: -l.C}
}

// IsRightDirected reports whether the line's direction vector points into
// the right half-plane (b < 0) or along the positive x-axis (b == 0, a >
// 0).
func (l Line) IsRightDirected() bool {
	return l.B < 0 || (l.B == 0 && l.A > 0)
}

// IsNormalUp reports the complement of IsRightDirected: whether the
// line's normal vector points into the upper half-plane.
func (l Line) IsNormalUp() bool {
	return !l.IsRightDirected()
}

// AsTrivialX returns the line x - v = 0, used to encode a display point's
// x-coordinate as a line for predicate evaluation.
func AsTrivialX(v float64) Line {
	return Line{A: 1, B: 0, C: -v}
}

// AsTrivialY returns the line y - v = 0, used to encode a display point's
// y-coordinate as a line for predicate evaluation.
func AsTrivialY(v float64) Line {
	return Line{A: 0, B: 1, C: -v}
}
