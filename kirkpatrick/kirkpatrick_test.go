package kirkpatrick

import (
	"testing"

	"github.com/chshersh-geo/planar/dcel"
	"github.com/chshersh-geo/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallArrangement() *dcel.DCEL {
	lines := []geom.Line{
		{A: 1, B: 1, C: -2},
		{A: 1, B: -1, C: 0},
		{A: 0, B: 1, C: -3},
	}
	return dcel.NewHulledFromLines(lines)
}

func TestBuild_ProducesARootCoveringTheWholeHull(t *testing.T) {
	hulled := smallArrangement()
	h := Build(hulled)
	require.NotNil(t, h.Root())
	assert.GreaterOrEqual(t, h.Levels(), 1)

	// Vertices 0-2 of a hulled DCEL are the bounding-triangle corners.
	for v := 0; v < 3; v++ {
		corner := hulled.Vertex(dcel.VertexID(v))
		assert.True(t, h.Root().Triangle.containsConvexPoint(corner.Line1, corner.Line2), "hull corner %d outside root", v)
	}
}

func TestFastLocate_AgreesWithNaiveLocateInsideHull(t *testing.T) {
	h := Build(smallArrangement())

	probes := []geom.Point{
		{X: 0.1, Y: 0.1},
		{X: 1, Y: 1},
		{X: 5, Y: 5},
		{X: -3, Y: 2},
	}

	for _, p := range probes {
		naiveEdge, naiveOK := h.NaiveLocate(p)
		fastEdge, fastOK := h.FastLocate(p)

		if naiveOK && fastOK {
			assert.Equal(t, d2Face(h, naiveEdge), d2Face(h, fastEdge), "disagreement at %v", p)
		}
	}
}

// d2Face canonicalizes a located half-edge to the vertex set of its
// face, so NaiveLocate (which may return any of the three half-edges
// bounding the same triangle) and FastLocate (which returns the
// half-edge the TriNode recorded) can be compared meaningfully.
func d2Face(h *Hierarchy, e dcel.EdgeID) [3]dcel.VertexID {
	d := h.levels[0]
	a := d.Edge(e).Origin
	b := d.Edge(d.Edge(e).Next).Origin
	c := d.Edge(d.Edge(d.Edge(e).Next).Next).Origin
	ids := [3]dcel.VertexID{a, b, c}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	return ids
}

func TestDeletedVertices_OneEntryPerLevel(t *testing.T) {
	h := Build(smallArrangement())
	deleted := h.DeletedVertices()
	assert.Equal(t, h.Levels(), len(deleted))
}
