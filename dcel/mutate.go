package dcel

// The methods in this file expose the arena's low-level link fields to
// package kirkpatrick, which needs to splice triangle-diagonal edges and
// merge collinear edges in place while compressing a triangulation
// level. They are deliberately thin: no invariant checking beyond what
// VerifyInvariants already covers, mirroring the teacher pack's own
// split between "cheap internal mutation" and "expensive external
// verification".

// NewEdge allocates a fresh half-edge with all links unset and returns
// its id.
func (d *DCEL) NewEdge() EdgeID { return d.addEdge() }

// SetOrigin sets e's origin vertex.
func (d *DCEL) SetOrigin(e EdgeID, v VertexID) { d.edges[e].origin = v }

// SetTwin sets e's twin half-edge.
func (d *DCEL) SetTwin(e, twin EdgeID) { d.edges[e].twin = twin }

// SetNext sets e's next half-edge in its face cycle.
func (d *DCEL) SetNext(e, next EdgeID) { d.edges[e].next = next }

// SetPrev sets e's previous half-edge in its face cycle.
func (d *DCEL) SetPrev(e, prev EdgeID) { d.edges[e].prev = prev }

// SetTriangleEdge flags e as a Kirkpatrick-triangulation diagonal rather
// than an original arrangement edge.
func (d *DCEL) SetTriangleEdge(e EdgeID, v bool) { d.edges[e].triangleEdge = v }

// SetVertexEdge sets the representative outgoing half-edge recorded for
// vertex v.
func (d *DCEL) SetVertexEdge(v VertexID, e EdgeID) { d.vertices[v].edge = e }

// MergeEdges splices out the shared vertex between two collinear
// half-edges in1 and in2 (in1.Next == in2, they bound the same face on
// one side), replacing both with a single edge spanning in1's origin to
// in2's far endpoint. Used when the degeneracy policy collapses a
// near-collinear triangle-fan corner during vertex deletion.
func (d *DCEL) MergeEdges(in1, in2 EdgeID) {
	in2n := d.edges[in2].next
	d.edges[in2n].prev = in1
	d.edges[in1].next = in2n

	in1t := d.edges[in1].twin
	in2t := d.edges[in2].twin
	in1tn := d.edges[in1t].next
	d.edges[in1tn].prev = in2t
	d.edges[in2t].next = in1tn

	d.edges[in1].twin = in2t
	d.edges[in2t].twin = in1
}
