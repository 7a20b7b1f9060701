package predicate

import "math"

// ivl is a minimal outward-rounded interval, used as the predicate
// cascade's second tier. Every arithmetic operation widens its result by
// one ULP in each direction via math.Nextafter so that, unlike a plain
// double evaluation, a sign conclusion drawn from an ivl can never be
// wrong: if the true value could round to zero, the interval straddles it.
//
// No directed-rounding interval package appears anywhere in the retrieved
// corpus; this is the narrowest stdlib-only stand-in for one (see
// DESIGN.md).
type ivl struct {
	lo, hi float64
}

func ivlOf(x float64) ivl {
	return ivl{lo: x, hi: x}
}

func roundDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

func roundUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

func (a ivl) add(b ivl) ivl {
	return ivl{lo: roundDown(a.lo + b.lo), hi: roundUp(a.hi + b.hi)}
}

func (a ivl) sub(b ivl) ivl {
	return ivl{lo: roundDown(a.lo - b.hi), hi: roundUp(a.hi - b.lo)}
}

func ivlMul(a, b ivl) ivl {
	c1 := a.lo * b.lo
	c2 := a.lo * b.hi
	c3 := a.hi * b.lo
	c4 := a.hi * b.hi
	lo := math.Min(math.Min(c1, c2), math.Min(c3, c4))
	hi := math.Max(math.Max(c1, c2), math.Max(c3, c4))
	return ivl{lo: roundDown(lo), hi: roundUp(hi)}
}
