// Package randgen provides the random source the skip-quadtree's level
// promotion and point-sampling tests draw from. Seeding follows the same
// "read entropy once, then run a deterministic math/rand stream" split
// as the teacher's RNG helpers, so a Source is fast after construction
// but unpredictable across runs without needing crypto/rand on every
// call.
package randgen

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"sync"

	"github.com/chshersh-geo/planar/geom"
)

// Source is a single, non-goroutine-safe stream of randomness. Callers
// that need independent concurrent streams should construct one Source
// per goroutine.
type Source struct {
	once sync.Once
	seed int64
	rnd  *mathrand.Rand
}

// New returns a Source that lazily seeds itself from crypto/rand on
// first use.
func New() *Source { return &Source{} }

// NewSeeded returns a Source with a fixed, reproducible seed, for tests
// that need deterministic promotion chains.
func NewSeeded(seed int64) *Source {
	return &Source{rnd: mathrand.New(mathrand.NewSource(seed))}
}

func (s *Source) ensure() {
	s.once.Do(func() {
		if s.rnd != nil {
			return
		}
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			s.rnd = mathrand.New(mathrand.NewSource(1))
			return
		}
		s.seed = int64(binary.LittleEndian.Uint64(buf[:]))
		s.rnd = mathrand.New(mathrand.NewSource(s.seed))
	})
}

// Float64In01 returns a pseudo-random value in [0, 1).
func (s *Source) Float64In01() float64 {
	s.ensure()
	return s.rnd.Float64()
}

// Bool reports true with the given probability, used by the
// skip-quadtree to decide whether a point is promoted to the next
// level. threshold 0.5 matches the classic skip-list/skip-quadtree coin
// flip.
func (s *Source) Bool(threshold float64) bool {
	s.ensure()
	return s.rnd.Float64() < threshold
}

// PointInBox returns a uniformly distributed point inside r, used by
// tests that need randomized point sets.
func (s *Source) PointInBox(r geom.Rect) geom.Point {
	s.ensure()
	x := r.Lo.X + s.rnd.Float64()*(r.Hi.X-r.Lo.X)
	y := r.Lo.Y + s.rnd.Float64()*(r.Hi.Y-r.Lo.Y)
	return geom.Point{X: x, Y: y}
}
