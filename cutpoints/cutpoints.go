// File: cutpoints.go
// Role: the single depth-first pass computing discovery/low-link
// numbers and, from them, cut vertices, bridges, tree and back edges.
package cutpoints

import "github.com/katalvlaran/graphpad/core"

// walker encapsulates mutable traversal state for one Analyze call.
// Its visited/low/parent maps are private to this pass; the components
// package keeps its own independent state.
type walker struct {
	adj    core.AdjacencyView
	disc   map[core.VertexID]int           // discovery time, presence = visited
	low    map[core.VertexID]int           // low-link value
	parent map[core.VertexID]core.VertexID // tree parent; roots absent
	clock  int                             // next discovery time
	res    *Result
}

// Analyze runs the combined structural pass over g and returns a fresh
// Result. The graph may be disconnected: every yet-unvisited vertex,
// in ascending-ID order, starts a new DFS tree, so discovery-time
// ranges of components are disjoint and the per-component results are
// simply unioned.
//
// Complexity: O(V + E) time, O(V) memory.
func Analyze(g *core.Graph) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Snapshot the topology for this run.
	adj := g.AdjacencyView()
	roots := g.Vertices()

	// 3. Prepare traversal state with capacity hints.
	n := len(roots)
	w := &walker{
		adj:    adj,
		disc:   make(map[core.VertexID]int, n),
		low:    make(map[core.VertexID]int, n),
		parent: make(map[core.VertexID]core.VertexID, n),
		res:    newResult(),
	}

	// 4. One DFS tree per unvisited root.
	var id core.VertexID
	for _, id = range roots {
		if _, seen := w.disc[id]; !seen {
			w.visit(id)
		}
	}

	return w.res, nil
}

// visit explores the subtree rooted at u, assigning discovery and
// low-link numbers, classifying edges, and applying the articulation
// and bridge rules on the way back up.
func (w *walker) visit(u core.VertexID) {
	// 1. Discover u: disc = low = next clock tick.
	w.disc[u] = w.clock
	w.low[u] = w.clock
	w.clock++

	p, hasParent := w.parent[u]
	children := 0

	// 2. Explore neighbors in adjacency (edge-insertion) order.
	var v core.VertexID
	for _, v = range w.adj[u] {
		if v == u {
			continue // tolerate self-loops: no effect on connectivity
		}

		key := core.MakeEdgeKey(u, v)

		if _, seen := w.disc[v]; !seen {
			// 2a. Tree edge: descend, then fold the child's low-link.
			children++
			w.res.TreeEdges[key] = true
			w.parent[v] = u
			w.visit(v)

			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}

			// Articulation rules: a root needs a second subtree; a
			// non-root needs a child whose subtree cannot climb above u.
			if !hasParent && children >= 2 {
				w.res.Cut[u] = true
			}
			if hasParent && w.low[v] >= w.disc[u] {
				w.res.Cut[u] = true
			}

			// Bridge rule: the child's subtree cannot reach u or higher.
			if w.low[v] > w.disc[u] {
				w.res.Bridges[key] = true
			}

			continue
		}

		if hasParent && v == p {
			continue // the tree edge back to the parent, already classified
		}

		// 2b. Back edge. The canonical key makes the classification
		// idempotent when the same physical edge is reached from its
		// other endpoint later in the walk.
		if !w.res.TreeEdges[key] && !w.res.BackEdges[key] {
			w.res.BackEdges[key] = true
		}
		if w.disc[v] < w.low[u] {
			w.low[u] = w.disc[v]
		}
	}
}
