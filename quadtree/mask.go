// Package quadtree implements the three related point indices the module
// is built on: a plain recursive Naive quadtree, a path-Compressed
// quadtree keyed by Mask, and a Skip structure layering a geometrically
// thinned sequence of Compressed quadtrees on top of each other for
// approximate range queries in time independent of the point count.
package quadtree


// Mask is the stable cross-level identity of a compressed-quadtree node:
// the sequence of quadrant digits (0-3) from the root down to the node,
// packed two bits per digit instead of the teacher pack's string
// concatenation, since a Mask is hashed on every insertion and lookup.
// A Mask holds at most 32 levels of quadrant digits, which comfortably
// exceeds any quadtree depth a float64 coordinate split can produce
// before the box degenerates to a single representable point.
type Mask struct {
	depth uint8
	bits  uint64
}

// rootMask is the empty path, identifying a compressed quadtree's root.
var rootMask = Mask{}

// child returns the Mask reached by descending into quadrant id (0-3)
// from m.
func (m Mask) child(id int) Mask {
	return Mask{depth: m.depth + 1, bits: m.bits<<2 | uint64(id&3)}
}

// Depth returns the number of quadrant digits in the path.
func (m Mask) Depth() int { return int(m.depth) }

// String renders the Mask as its digit sequence, e.g. "021", for
// debugging and test failure messages.
func (m Mask) String() string {
	if m.depth == 0 {
		return "(root)"
	}
	out := make([]byte, m.depth)
	for i := int(m.depth) - 1; i >= 0; i-- {
		digit := (m.bits >> uint(2*(int(m.depth)-1-i))) & 3
		out[i] = byte('0' + digit)
	}
	return string(out)
}
