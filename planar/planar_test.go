package planar

import (
	"testing"

	"github.com/chshersh-geo/planar/dcel"
	"github.com/chshersh-geo/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrangement_LocateNaiveFindsEveryFace(t *testing.T) {
	a, err := New(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)
	a.AddLine(geom.Line{A: 1, B: 1, C: -5})

	for _, p := range []geom.Point{{X: 10, Y: 10}, {X: -10, Y: -10}, {X: 1, Y: 1}} {
		_, ok := a.LocateNaive(p)
		assert.True(t, ok, "expected %v to be located", p)
	}
}

func TestArrangement_LocateFastRequiresBuiltHierarchy(t *testing.T) {
	a, err := New(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)
	_, ok := a.LocateFast(geom.Point{X: 1, Y: 1})
	assert.False(t, ok, "expected LocateFast to fail before BuildHierarchy")

	a.BuildHierarchy()
	_, ok = a.LocateFast(geom.Point{X: 1, Y: 1})
	assert.True(t, ok)

	a.AddLine(geom.Line{A: 1, B: -1, C: 2})
	_, ok = a.LocateFast(geom.Point{X: 1, Y: 1})
	assert.False(t, ok, "expected LocateFast to go stale after AddLine")
}

func TestArrangement_IntersectedEdgesNonEmpty(t *testing.T) {
	a, err := New(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)
	a.AddLine(geom.Line{A: 1, B: 1, C: -5})

	edges := a.IntersectedEdges(geom.Line{A: 1, B: -1, C: 0})
	assert.NotEmpty(t, edges)
}

func TestNew_ParallelSeedLinesReturnError(t *testing.T) {
	_, err := New(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 1, B: 0, C: 1})
	assert.ErrorIs(t, err, dcel.ErrParallelLine)
}

func TestPointIndex_InsertFindRange(t *testing.T) {
	box := geom.NewRect(0, 0, 100, 100)
	idx := NewPointIndex(box)

	pts := []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 90, Y: 90}}
	for _, p := range pts {
		idx.Insert(p)
	}

	for _, p := range pts {
		_, ok := idx.Find(p)
		assert.True(t, ok)
	}

	got := idx.Range(geom.NewRect(0, 0, 25, 25), 0)
	assert.ElementsMatch(t, []geom.Point{pts[0], pts[1]}, got)
}

func TestScenario_LineArrangementAndPointIndexTogether(t *testing.T) {
	a, err := New(geom.Line{A: 1, B: 0, C: -1}, geom.Line{A: 0, B: 1, C: -1})
	require.NoError(t, err)
	a.AddLine(geom.Line{A: 1, B: 1, C: -4})
	a.BuildHierarchy()

	p := geom.Point{X: 5, Y: 5}
	naiveEdge, ok := a.LocateNaive(p)
	require.True(t, ok)
	fastEdge, ok := a.LocateFast(p)
	require.True(t, ok)
	_ = naiveEdge
	_ = fastEdge

	idx := NewPointIndex(geom.NewRect(-10, -10, 10, 10))
	idx.Insert(p)
	_, found := idx.Find(p)
	assert.True(t, found)
}
