package dcel

import (
	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/predicate"
)

func signDet2(l1, l2 geom.Line) predicate.Sign {
	return predicate.SignDet2(l1.A, l1.B, l2.A, l2.B)
}

func linePointSign(l, sl1, sl2 geom.Line) predicate.Sign {
	return predicate.LinePointSign(l, sl1, sl2)
}
