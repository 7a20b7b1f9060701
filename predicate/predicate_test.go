package predicate

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/chshersh-geo/planar/geom"
	"github.com/stretchr/testify/assert"
)

// referenceDet2 recomputes ad-bc directly in big.Rat as an oracle
// independent of SignDet2's own cascade.
func referenceDet2(a, b, c, d float64) Sign {
	l := new(big.Rat).Mul(ratOf(a), ratOf(d))
	r := new(big.Rat).Mul(ratOf(b), ratOf(c))
	l.Sub(l, r)
	switch l.Sign() {
	case 0:
		return Zero
	case 1:
		return Positive
	default:
		return Negative
	}
}

func TestSignDet2_AgreesWithRationalOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := float64(rng.Intn(2001) - 1000)
		b := float64(rng.Intn(2001) - 1000)
		c := float64(rng.Intn(2001) - 1000)
		d := float64(rng.Intn(2001) - 1000)

		got := SignDet2(a, b, c, d)
		want := referenceDet2(a, b, c, d)
		assert.Equal(t, want, got)
	}
}

func TestSignDet2_DegenerateCollinearCases(t *testing.T) {
	assert.Equal(t, Zero, SignDet2(1, 2, 2, 4))
	assert.Equal(t, Zero, SignDet2(0, 0, 5, 7))
}

func TestTurn_ConsistentUnderPermutation(t *testing.T) {
	l1, l2 := geom.AsTrivialX(0), geom.AsTrivialY(0)
	s1, s2 := geom.AsTrivialX(1), geom.AsTrivialY(0)
	t1, t2 := geom.AsTrivialX(0), geom.AsTrivialY(1)

	// (0,0) (1,0) (0,1) is a left turn.
	assert.Equal(t, Left, Turn(l1, l2, s1, s2, t1, t2))
	// Swapping the last two points reverses the turn.
	assert.Equal(t, Right, Turn(l1, l2, t1, t2, s1, s2))
}

func TestTurn_CollinearPoints(t *testing.T) {
	l1, l2 := geom.AsTrivialX(0), geom.AsTrivialY(0)
	s1, s2 := geom.AsTrivialX(1), geom.AsTrivialY(1)
	t1, t2 := geom.AsTrivialX(2), geom.AsTrivialY(2)

	assert.Equal(t, Collinear, Turn(l1, l2, s1, s2, t1, t2))
}
