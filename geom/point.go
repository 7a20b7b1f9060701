package geom

import "fmt"

// Point is a display-only floating point coordinate. It is never an input
// to an exact predicate directly; every comparison against a Point first
// re-expresses it as the pair of trivial lines x=X, y=Y (see AsTrivialX
// / AsTrivialY) so that it competes on equal footing with line-defined
// vertices.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// AsLines returns the pair of trivial lines that encode p for predicate
// evaluation: x - p.X = 0 and y - p.Y = 0.
func (p Point) AsLines() (Line, Line) {
	return AsTrivialX(p.X), AsTrivialY(p.Y)
}

// LineCross identifies a vertex, or a Kirkpatrick triangle corner, as the
// unordered pair of lines whose intersection it is.
type LineCross struct {
	L1, L2 Line
}
