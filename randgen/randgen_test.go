package randgen

import (
	"testing"

	"github.com/chshersh-geo/planar/geom"
	"github.com/stretchr/testify/assert"
)

func TestNewSeeded_IsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64In01(), b.Float64In01())
	}
}

func TestPointInBox_StaysInBounds(t *testing.T) {
	s := NewSeeded(7)
	box := geom.NewRect(-1, -1, 1, 1)

	for i := 0; i < 200; i++ {
		p := s.PointInBox(box)
		assert.True(t, box.Contains(p))
	}
}

func TestBool_RespectsExtremeThresholds(t *testing.T) {
	s := NewSeeded(3)
	assert.False(t, s.Bool(0))
	assert.True(t, s.Bool(1))
}
