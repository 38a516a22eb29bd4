// File: adjacency.go
// Role: derive a fresh AdjacencyView snapshot for one analysis run.
package core

// AdjacencyView builds the neighbor mapping from the current store:
// every vertex gets an entry (isolated vertices map to an empty
// sequence), and each edge {u, v} appends v to u's sequence and u to
// v's, in edge-insertion order.
//
// Defensive tolerance: an edge whose endpoint is missing from the
// vertex catalog is skipped rather than failing, and self-loops are
// skipped, so a view built mid-edit never crashes a traversal.
//
// The view is a snapshot - callers own it for the duration of one
// analysis and discard it; it is never cached by the Graph.
// Complexity: O(V + E), Memory: O(V + E).
func (g *Graph) AdjacencyView() AdjacencyView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	view := make(AdjacencyView, len(g.vertices))

	// 1. One entry per vertex, empty until edges fill it.
	var id VertexID
	for id = range g.vertices {
		view[id] = nil
	}

	// 2. Append endpoints pairwise in edge-insertion order.
	var k EdgeKey
	for _, k = range g.edgeList {
		if k.Loop() {
			continue
		}
		if _, ok := g.vertices[k.A]; !ok {
			continue
		}
		if _, ok := g.vertices[k.B]; !ok {
			continue
		}
		view[k.A] = append(view[k.A], k.B)
		view[k.B] = append(view[k.B], k.A)
	}

	return view
}
