package dcel

import (
	"testing"

	"github.com/chshersh-geo/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromTwoLines_WellFormed(t *testing.T) {
	d, err := NewFromTwoLines(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)

	require.NoError(t, d.VerifyInvariants())
	assert.Equal(t, 2, d.NumVertices())
	assert.Equal(t, 8, d.NumEdges())
}

func TestNewFromTwoLines_ParallelLinesReturnError(t *testing.T) {
	_, err := NewFromTwoLines(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 1, B: 0, C: 1})
	assert.ErrorIs(t, err, ErrParallelLine)
}

func TestAddLine_GrowsArrangementCorrectly(t *testing.T) {
	d, err := NewFromTwoLines(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 1})
	require.NoError(t, err)

	lines := []geom.Line{
		{A: 1, B: 1, C: 2},
		{A: 1, B: -1, C: 3},
		{A: 2, B: 1, C: -5},
	}
	for _, l := range lines {
		d.AddLine(l)
		require.NoError(t, d.VerifyInvariants())
	}

	// For n lines in general position, a full line arrangement has
	// 1 + n(n-1)/2 vertices (the point at infinity plus one per pairwise
	// crossing) and 2n^2 half-edges (each line contributes 4j+2 new
	// half-edges when it is the (j+1)-th line added).
	n := 2 + len(lines)
	wantVertices := 1 + n*(n-1)/2
	wantEdges := 2 * n * n

	assert.Equal(t, wantVertices, d.NumVertices())
	assert.Equal(t, wantEdges, d.NumEdges())
}

func TestGetFaceByPoint_FindsContainingFace(t *testing.T) {
	d, err := NewFromTwoLines(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)
	d.AddLine(geom.Line{A: 1, B: 1, C: -5})

	_, ok := d.GetFaceByPoint(geom.Point{X: 10, Y: 10})
	assert.True(t, ok)

	_, ok = d.GetFaceByPoint(geom.Point{X: -10, Y: -10})
	assert.True(t, ok)
}

func TestGetIntersectedEdges_NonEmptyForCrossingLine(t *testing.T) {
	d, err := NewFromTwoLines(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)
	d.AddLine(geom.Line{A: 1, B: 1, C: -5})

	crossed := d.GetIntersectedEdges(geom.Line{A: 1, B: -1, C: 0})
	assert.NotEmpty(t, crossed)
}

func TestNewHulledFromLines_AllBoundaryEdgesAreHullEdges(t *testing.T) {
	d := NewHulledFromLines([]geom.Line{
		{A: 1, B: 0, C: -1},
		{A: 0, B: 1, C: -1},
	})

	require.NoError(t, d.VerifyInvariants())

	found := false
	for id := 0; id < d.NumEdges(); id++ {
		e := d.Edge(EdgeID(id))
		if e.HullEdge {
			found = true
			twin := d.Edge(e.Twin)
			assert.True(t, twin.HullEdge, "both directions of a boundary edge must be flagged HullEdge")
		}
	}
	assert.True(t, found, "expected at least one hull edge")
}

func TestClone_IsIndependentCopy(t *testing.T) {
	d, err := NewFromTwoLines(geom.Line{A: 1, B: 0, C: 0}, geom.Line{A: 0, B: 1, C: 0})
	require.NoError(t, err)
	clone := d.Clone()

	d.AddLine(geom.Line{A: 1, B: 1, C: -1})

	assert.NotEqual(t, d.NumEdges(), clone.NumEdges())
	require.NoError(t, clone.VerifyInvariants())
}
