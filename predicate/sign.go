// Package predicate implements the exact-arithmetic decision layer that the
// rest of this module routes every topological comparison through.
//
// Each predicate follows the same three-tier cascade: a fast IEEE double
// evaluation with a conservative error bound, a directed-rounding interval
// re-evaluation when the double result is too close to call, and finally an
// exact big.Rat evaluation that can never be indeterminate. Only the third
// tier is guaranteed correct; the first two are pure performance shortcuts.
package predicate

import "math"

// Sign is the result of comparing a real value against zero.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Orientation is the result of a turn predicate on three points.
type Orientation int

const (
	Right     Orientation = -1
	Collinear Orientation = 0
	Left      Orientation = 1
)

// dblEpsilon is the machine epsilon for float64, used to scale the
// conservative error bounds below.
const dblEpsilon = 2.220446049250313e-16

func signOf(v float64) Sign {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	default:
		return Zero
	}
}

// SignDet2 returns the sign of the 2x2 determinant ad-bc.
//
// The filter multiplier 4 bounds the round-off of a two-product,
// one-subtraction expression evaluated in double precision.
func SignDet2(a, b, c, d float64) Sign {
	l := a * d
	r := b * c
	det := l - r
	eps := (math.Abs(l) + math.Abs(r)) * 4 * dblEpsilon

	if det > eps {
		return Positive
	}
	if det < -eps {
		return Negative
	}

	i := ivlMul(ivlOf(a), ivlOf(d)).sub(ivlMul(ivlOf(b), ivlOf(c)))
	if i.lo > 0 {
		return Positive
	}
	if i.hi < 0 {
		return Negative
	}

	res := ratMul(ratOf(a), ratOf(d))
	res.Sub(res, ratMul(ratOf(b), ratOf(c)))
	return signOf(float64(res.Sign()))
}

// SignDet3 returns the sign of the 3x3 determinant formed by treating a and
// b as rows of a homogeneous basis and p as the point being tested, i.e. the
// signed volume a.(b x p) used by the turn predicate's homogeneous-point
// expansion.
func SignDet3(a, b, p Vec3) Sign {
	l := a.X * (b.Y*p.Z - b.Z*p.Y)
	m := a.Y * (b.Z*p.X - b.X*p.Z)
	r := a.Z * (b.X*p.Y - b.Y*p.X)
	det := l + m + r
	eps := (math.Abs(l) + math.Abs(m) + math.Abs(r)) * 16 * dblEpsilon

	if det > eps {
		return Positive
	}
	if det < -eps {
		return Negative
	}

	ax, ay, az := ivlOf(a.X), ivlOf(a.Y), ivlOf(a.Z)
	bx, by, bz := ivlOf(b.X), ivlOf(b.Y), ivlOf(b.Z)
	px, py, pz := ivlOf(p.X), ivlOf(p.Y), ivlOf(p.Z)

	il := ivlMul(ax, ivlMul(by, pz).sub(ivlMul(bz, py)))
	im := ivlMul(ay, ivlMul(bz, px).sub(ivlMul(bx, pz)))
	ir := ivlMul(az, ivlMul(bx, py).sub(ivlMul(by, px)))
	i := il.add(im).add(ir)

	if i.lo > 0 {
		return Positive
	}
	if i.hi < 0 {
		return Negative
	}

	rax, ray, raz := ratOf(a.X), ratOf(a.Y), ratOf(a.Z)
	rbx, rby, rbz := ratOf(b.X), ratOf(b.Y), ratOf(b.Z)
	rpx, rpy, rpz := ratOf(p.X), ratOf(p.Y), ratOf(p.Z)

	t1 := ratMul(rby, rpz)
	t2 := ratMul(rbz, rpy)
	t1.Sub(t1, t2)
	t1 = ratMul(rax, t1)

	t3 := ratMul(rbz, rpx)
	t4 := ratMul(rbx, rpz)
	t3.Sub(t3, t4)
	t3 = ratMul(ray, t3)

	t5 := ratMul(rbx, rpy)
	t6 := ratMul(rby, rpx)
	t5.Sub(t5, t6)
	t5 = ratMul(raz, t5)

	t1.Add(t1, t3)
	t1.Add(t1, t5)

	return signOf(float64(t1.Sign()))
}
