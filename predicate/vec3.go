package predicate

// Vec3 is a homogeneous 3-vector, used only as the input shape for
// SignDet3 (the (a, b, p) triple of line coefficients and the
// intersection point they imply). It carries no geometric behavior of its
// own; geom.Line is responsible for deriving these triples.
type Vec3 struct {
	X, Y, Z float64
}
