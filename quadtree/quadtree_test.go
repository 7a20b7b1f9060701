package quadtree

import (
	"testing"

	"github.com/chshersh-geo/planar/geom"
	"github.com/chshersh-geo/planar/randgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaive_InsertFindRemove(t *testing.T) {
	box := geom.NewRect(0, 0, 100, 100)
	q := NewNaive(box)

	pts := []geom.Point{{X: 1, Y: 1}, {X: 50, Y: 50}, {X: 99, Y: 1}, {X: 1, Y: 99}}
	for _, p := range pts {
		require.NoError(t, q.Insert(p))
	}
	for _, p := range pts {
		assert.True(t, q.Find(p))
	}

	assert.True(t, q.Remove(pts[0]))
	assert.False(t, q.Find(pts[0]))
	for _, p := range pts[1:] {
		assert.True(t, q.Find(p))
	}
}

func TestNaive_OutOfBounds(t *testing.T) {
	q := NewNaive(geom.NewRect(0, 0, 10, 10))
	assert.ErrorIs(t, q.Insert(geom.Point{X: 100, Y: 100}), ErrOutOfBounds)
}

func TestCompressed_NeverExactlyOneChild(t *testing.T) {
	box := geom.NewRect(0, 0, 1000, 1000)
	q := NewCompressed(box)

	pts := []geom.Point{
		{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
		{X: 900, Y: 900}, {X: 10, Y: 500}, {X: 500, Y: 10},
	}
	for _, p := range pts {
		require.NoError(t, q.Insert(p))
	}

	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf {
			return
		}
		count := 0
		for i := 0; i < 4; i++ {
			if n.children[i] != nil {
				count++
			}
		}
		assert.NotEqual(t, 1, count, "internal node %v has exactly one child", n.mask)
		for i := 0; i < 4; i++ {
			if n.children[i] != nil {
				walk(n.children[i])
			}
		}
	}
	walk(q.root)

	for _, p := range pts {
		snap, ok := q.Find(p)
		assert.True(t, ok)
		assert.Equal(t, p, snap.Point)
	}
}

func TestCompressed_RangeApprox(t *testing.T) {
	box := geom.NewRect(0, 0, 100, 100)
	q := NewCompressed(box)

	inside := []geom.Point{{X: 10, Y: 10}, {X: 15, Y: 12}, {X: 19, Y: 19}}
	outside := geom.Point{X: 90, Y: 90}
	for _, p := range append(append([]geom.Point{}, inside...), outside) {
		require.NoError(t, q.Insert(p))
	}

	got := q.RangeApprox(geom.NewRect(0, 0, 20, 20), 0)
	assert.ElementsMatch(t, inside, got)
}

func TestSkip_InsertAndFind(t *testing.T) {
	box := geom.NewRect(0, 0, 100, 100)
	src := randgen.NewSeeded(99)
	s := NewSkip(box, 0.5, src)

	pts := []geom.Point{{X: 5, Y: 5}, {X: 50, Y: 50}, {X: 80, Y: 20}, {X: 20, Y: 80}}
	for _, p := range pts {
		require.NoError(t, s.Insert(p))
	}
	for _, p := range pts {
		snap, ok := s.Find(p)
		assert.True(t, ok)
		assert.Equal(t, p, snap.Point)
	}
}

func TestSkip_RangeApproxAtLevelZeroMatchesCompressed(t *testing.T) {
	box := geom.NewRect(0, 0, 100, 100)
	src := randgen.NewSeeded(7)
	s := NewSkip(box, 0.5, src)

	plain := NewCompressed(box)

	for i := 0; i < 30; i++ {
		p := src.PointInBox(box)
		require.NoError(t, s.Insert(p))
		require.NoError(t, plain.Insert(p))
	}

	r := geom.NewRect(10, 10, 60, 60)
	got := s.RangeApproxAtLevel(r, 0, 0)
	want := plain.RangeApprox(r, 0)
	assert.ElementsMatch(t, want, got)
}
