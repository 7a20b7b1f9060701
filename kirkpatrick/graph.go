package kirkpatrick

import "github.com/chshersh-geo/planar/dcel"

// reachableGraph BFS-walks d from its entry vertex, returning the set of
// vertices still reachable through the face structure (a vertex removed
// by an earlier compression pass is no longer reachable even though its
// arena slot still exists) and, for each reachable vertex, its distinct
// neighbor list. This mirrors triangulation_level::create_graph.
func reachableGraph(d *dcel.DCEL) (map[dcel.VertexID]bool, map[dcel.VertexID][]dcel.VertexID) {
	reachable := make(map[dcel.VertexID]bool)
	neighbors := make(map[dcel.VertexID][]dcel.VertexID)

	start := d.EntryVertex()
	reachable[start] = true
	queue := []dcel.VertexID{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		seen := make(map[dcel.VertexID]bool)
		startEdge := d.Vertex(v).Edge
		e := startEdge
		for {
			eRec := d.Edge(e)
			next := d.Edge(eRec.Next).Origin

			if next != v && !seen[next] {
				neighbors[v] = append(neighbors[v], next)
				seen[next] = true
			}
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}

			e = d.Edge(eRec.Twin).Next
			if e == startEdge {
				break
			}
		}
	}

	return reachable, neighbors
}

// notTrivial reports whether d's face structure still reaches more than
// three distinct vertices from its entry vertex, i.e. whether another
// compression level is still needed.
func notTrivial(d *dcel.DCEL) bool {
	visited := make(map[dcel.VertexID]bool)
	start := d.EntryVertex()
	visited[start] = true
	queue := []dcel.VertexID{start}
	size := 1

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		startEdge := d.Vertex(v).Edge
		e := startEdge
		for {
			eRec := d.Edge(e)
			next := d.Edge(eRec.Next).Origin
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
				size++
			}
			if size > 3 {
				return true
			}
			e = d.Edge(eRec.Twin).Next
			if e == startEdge {
				break
			}
		}
	}

	return size > 3
}

func isTriangleFace(d *dcel.DCEL, e dcel.EdgeID) bool {
	f := e
	size := 0
	for {
		size++
		if size > 3 {
			return false
		}
		f = d.Edge(f).Next
		if f == e {
			break
		}
	}
	return size <= 3
}

func findTriangle(nodes map[dcel.EdgeID]*TriNode, d *dcel.DCEL, e dcel.EdgeID) (*TriNode, bool) {
	f := e
	for i := 0; i < 3; i++ {
		if t, ok := nodes[f]; ok {
			delete(nodes, f)
			return t, true
		}
		f = d.Edge(f).Next
	}
	return nil, false
}
