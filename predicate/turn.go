package predicate

import (
	"math"

	"github.com/chshersh-geo/planar/geom"
)

// Turn returns the orientation of the directed triple of points (p1, p2,
// p3), where p1 = L1 ∩ L2, p2 = S1 ∩ S2 and p3 = T1 ∩ T2. Each point is
// never materialized as a float64 pair; the comparison is carried out
// directly on the twelve line coefficients, with the cascade's usual
// float -> interval -> rational fallback.
//
// The filter multiplier 45 bounds the round-off of this predicate's
// degree-8 expansion in the input coefficients.
func Turn(l1, l2, s1, s2, t1, t2 geom.Line) Orientation {
	detL := SignDet2(l1.A, l1.B, l2.A, l2.B)
	detS := SignDet2(s1.A, s1.B, s2.A, s2.B)
	detT := SignDet2(t1.A, t1.B, t2.A, t2.B)
	detSign := int(detL) * int(detL) * int(detS) * int(detT)

	p1x := -l1.C*l2.B + l1.B*l2.C
	p1y := -l1.A*l2.C + l1.C*l2.A
	p2x := -s1.C*s2.B + s1.B*s2.C
	p2y := -s1.A*s2.C + s1.C*s2.A
	p3x := -t1.C*t2.B + t1.B*t2.C
	p3y := -t1.A*t2.C + t1.C*t2.A

	det1 := l1.A*l2.B - l1.B*l2.A
	det2 := s1.A*s2.B - s1.B*s2.A
	det3 := t1.A*t2.B - t1.B*t2.A

	x1 := p2x*det1 - p1x*det2
	x2 := p3y*det1 - p1y*det3
	x3 := p2y*det1 - p1y*det2
	x4 := p3x*det1 - p1x*det3

	res := x1*x2 - x3*x4
	eps := (math.Abs(x1*x2) + math.Abs(x3*x4)) * 45 * dblEpsilon

	orientFromSign := func(s Sign) Orientation {
		if s == Zero {
			return Collinear
		}
		if (s == Positive) == (detSign > 0) {
			return Left
		}
		return Right
	}

	if res > eps {
		return orientFromSign(Positive)
	}
	if res < -eps {
		return orientFromSign(Negative)
	}

	ix1 := ivlMul(ivlOf(p2x), ivlOf(det1)).sub(ivlMul(ivlOf(p1x), ivlOf(det2)))
	ix2 := ivlMul(ivlOf(p3y), ivlOf(det1)).sub(ivlMul(ivlOf(p1y), ivlOf(det3)))
	ix3 := ivlMul(ivlOf(p2y), ivlOf(det1)).sub(ivlMul(ivlOf(p1y), ivlOf(det2)))
	ix4 := ivlMul(ivlOf(p3x), ivlOf(det1)).sub(ivlMul(ivlOf(p1x), ivlOf(det3)))
	ires := ivlMul(ix1, ix2).sub(ivlMul(ix3, ix4))

	if ires.lo > 0 {
		return orientFromSign(Positive)
	}
	if ires.hi < 0 {
		return orientFromSign(Negative)
	}
	if ires.lo == ires.hi {
		return Collinear
	}

	rp1x, rp2x, rp3x := ratOf(p1x), ratOf(p2x), ratOf(p3x)
	rp1y, rp2y, rp3y := ratOf(p1y), ratOf(p2y), ratOf(p3y)
	rdet1, rdet2, rdet3 := ratOf(det1), ratOf(det2), ratOf(det3)

	rx1 := ratMul(rp2x, rdet1)
	rx1.Sub(rx1, ratMul(rp1x, rdet2))
	rx2 := ratMul(rp3y, rdet1)
	rx2.Sub(rx2, ratMul(rp1y, rdet3))
	rx3 := ratMul(rp2y, rdet1)
	rx3.Sub(rx3, ratMul(rp1y, rdet2))
	rx4 := ratMul(rp3x, rdet1)
	rx4.Sub(rx4, ratMul(rp1x, rdet3))

	rres := ratMul(rx1, rx2)
	rres.Sub(rres, ratMul(rx3, rx4))

	switch rres.Sign() {
	case 0:
		return Collinear
	case 1:
		return orientFromSign(Positive)
	default:
		return orientFromSign(Negative)
	}
}

// XDiff returns the sign of the x-coordinate difference between the
// line-defined points L1 ∩ L2 and S1 ∩ S2. It is used only for
// collinear-overlap tests inside triangle/triangle intersection.
func XDiff(l1, l2, s1, s2 geom.Line) Sign {
	detLS := int(SignDet2(l1.A, l1.B, l2.A, l2.B)) * int(SignDet2(s1.A, s1.B, s2.A, s2.B))

	det1 := -l1.C*l2.B + l1.B*l2.C
	det2 := s1.A*s2.B - s1.B*s2.A
	det3 := -s1.C*s2.B + s1.B*s2.C
	det4 := l1.A*l2.B - l1.B*l2.A

	res := det1*det2 - det3*det4
	eps := (math.Abs(det1*det2) + math.Abs(det3*det4)) * 18 * dblEpsilon

	signed := func(s Sign) Sign {
		if s == Zero {
			return Zero
		}
		if (s == Positive) == (detLS > 0) {
			return Positive
		}
		return Negative
	}

	if res > eps {
		return signed(Positive)
	}
	if res < -eps {
		return signed(Negative)
	}

	i := ivlMul(ivlOf(det1), ivlOf(det2)).sub(ivlMul(ivlOf(det3), ivlOf(det4)))
	if i.lo > 0 {
		return signed(Positive)
	}
	if i.hi < 0 {
		return signed(Negative)
	}

	r := ratMul(ratOf(det1), ratOf(det2))
	r.Sub(r, ratMul(ratOf(det3), ratOf(det4)))
	switch r.Sign() {
	case 0:
		return Zero
	case 1:
		return signed(Positive)
	default:
		return signed(Negative)
	}
}
