package predicate

import "math/big"

// ratOf converts a float64 exactly into a big.Rat. float64 is a binary
// fraction, so this conversion is always exact; it is the cascade's final,
// always-correct tier.
func ratOf(x float64) *big.Rat {
	return new(big.Rat).SetFloat64(x)
}

func ratMul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}
