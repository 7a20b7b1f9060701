package predicate

import "github.com/chshersh-geo/planar/geom"

// LinePointSign classifies which side of the directed line l the
// line-defined point sl1 ∩ sl2 lies on, corrected for the orientation of
// the (sl1, sl2) basis. It underlies both RayLineIntersection and
// LinePosition.
func LinePointSign(l, sl1, sl2 geom.Line) Sign {
	lp := Vec3{X: l.A, Y: l.B, Z: l.C}
	v1 := Vec3{X: sl1.A, Y: sl1.B, Z: sl1.C}
	v2 := Vec3{X: sl2.A, Y: sl2.B, Z: sl2.C}

	vpos := SignDet3(lp, v1, v2)
	vdet := SignDet2(sl1.A, sl1.B, sl2.A, sl2.B)

	return Sign(int(vpos) * int(vdet))
}

// RayLineIntersection reports whether the unbounded ray directed along
// edgeLine, whose finite endpoint is defined by the line pair (sl1, sl2),
// is crossed by crossLine.
func RayLineIntersection(crossLine, edgeLine, sl1, sl2 geom.Line) bool {
	l := crossLine
	if !l.IsNormalUp() {
		l = l.Inverse()
	}

	vpos := SignDet3(
		Vec3{X: l.A, Y: l.B, Z: l.C},
		Vec3{X: sl1.A, Y: sl1.B, Z: sl1.C},
		Vec3{X: sl2.A, Y: sl2.B, Z: sl2.C},
	)
	vdet := SignDet2(sl1.A, sl1.B, sl2.A, sl2.B)
	res := int(vpos) * int(vdet)

	sx, sy := -edgeLine.B, edgeLine.A
	px, py := -l.B, l.A
	if edgeLine.IsRightDirected() {
		px, py = -px, -py
	}

	orient := SignDet2(sx, sy, px, py)
	if orient == Zero {
		return false
	}

	if res > 0 {
		if !edgeLine.IsRightDirected() {
			return orient == Negative
		}
		return orient == Positive
	}
	if !edgeLine.IsRightDirected() {
		return orient == Positive
	}
	return orient == Negative
}

// SegmentLineIntersection reports whether the bounded segment whose
// endpoints are the line-defined points (sl1 ∩ sl2) and (dl1 ∩ dl2) is
// crossed by l, i.e. the two endpoints lie on opposite sides of l.
func SegmentLineIntersection(l, sl1, sl2, dl1, dl2 geom.Line) bool {
	return LinePointSign(l, sl1, sl2) != LinePointSign(l, dl1, dl2)
}

// LinePosition classifies point p against the undirected line l: Positive
// if p lies to one side, Negative to the other, Zero if p lies on l.
func LinePosition(l geom.Line, p geom.Point) Sign {
	if !l.IsNormalUp() {
		l = l.Inverse()
	}
	lx, ly := p.AsLines()
	return LinePointSign(l, lx, ly)
}

// PointSegmentOrientation is the turn predicate specialised to a display
// point p rather than a third line-defined point.
func PointSegmentOrientation(sl1, sl2, dl1, dl2 geom.Line, p geom.Point) Orientation {
	px, py := p.AsLines()
	return Turn(sl1, sl2, dl1, dl2, px, py)
}
