package dcel

import "fmt"

// VerifyInvariants checks the half-edge well-formedness properties every
// DCEL must hold after construction or any sequence of AddLine calls:
// twin is an involution, next/prev are mutual inverses, every half-edge
// has an origin, every next cycle returns to its start, and every
// vertex's representative half-edge originates at that vertex. Supporting
// lines are not compared. It is intended for use in tests, not on any
// hot path.
func (d *DCEL) VerifyInvariants() error {
	for id := range d.edges {
		e := EdgeID(id)
		rec := d.edges[id]

		if rec.twin == NoEdge || rec.next == NoEdge || rec.prev == NoEdge {
			return fmt.Errorf("%w: edge %d has an unset link", ErrBrokenInvariant, id)
		}
		if d.edges[rec.twin].twin != e {
			return fmt.Errorf("%w: edge %d twin is not an involution", ErrBrokenInvariant, id)
		}
		if d.edges[rec.next].prev != e {
			return fmt.Errorf("%w: edge %d next.prev != self", ErrBrokenInvariant, id)
		}
		if d.edges[rec.prev].next != e {
			return fmt.Errorf("%w: edge %d prev.next != self", ErrBrokenInvariant, id)
		}
		if rec.origin == NoVertex {
			return fmt.Errorf("%w: edge %d has no origin", ErrBrokenInvariant, id)
		}
	}

	visited := make([]bool, len(d.edges))
	for id := range d.edges {
		if visited[id] {
			continue
		}
		e := EdgeID(id)
		steps := 0
		for {
			if visited[e] {
				return fmt.Errorf("%w: face cycle starting at %d does not close cleanly", ErrBrokenInvariant, id)
			}
			visited[e] = true
			e = d.edges[e].next
			steps++
			if steps > len(d.edges)+1 {
				return fmt.Errorf("%w: face cycle starting at %d never returns", ErrBrokenInvariant, id)
			}
			if e == EdgeID(id) {
				break
			}
		}
	}

	for v := range d.vertices {
		e := d.vertices[v].edge
		if e == NoEdge {
			continue
		}
		if int(d.edges[e].origin) != v {
			return fmt.Errorf("%w: vertex %d's representative edge does not originate at it", ErrBrokenInvariant, v)
		}
	}

	return nil
}
