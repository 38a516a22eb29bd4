// File: methods_edges.go
// Role: edge lifecycle & queries.
//
// Invariants:
//   - Simple graph: no self-loops, no parallel edges. Violating
//     requests are silent no-ops (editor semantics).
//   - edgeList keeps insertion order; edgeSet mirrors it for O(1)
//     membership. The two are updated together under the write lock.
package core

// InsertEdge adds the undirected edge {u, v}. It is a silent no-op
// when u == v, when either endpoint is absent, or when the pair is
// already connected. Reports whether the store changed.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(u, v VertexID) bool {
	if u == v {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return false
	}
	if _, ok := g.vertices[v]; !ok {
		return false
	}

	k := MakeEdgeKey(u, v)
	if _, dup := g.edgeSet[k]; dup {
		return false
	}

	g.edgeSet[k] = struct{}{}
	g.edgeList = append(g.edgeList, k)

	return true
}

// RemoveEdge deletes the edge {u, v} if present; silent no-op
// otherwise. Reports whether the store changed.
// Complexity: O(E) for the ordered-list splice.
func (g *Graph) RemoveEdge(u, v VertexID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(MakeEdgeKey(u, v))
}

// removeEdgeLocked splices k out of both indexes. Caller holds mu.
func (g *Graph) removeEdgeLocked(k EdgeKey) bool {
	if _, ok := g.edgeSet[k]; !ok {
		return false
	}
	delete(g.edgeSet, k)

	for i, e := range g.edgeList {
		if e == k {
			g.edgeList = append(g.edgeList[:i], g.edgeList[i+1:]...)
			break
		}
	}

	return true
}

// HasEdge reports whether the unordered pair {u, v} is connected.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeSet[MakeEdgeKey(u, v)]

	return ok
}

// Edges returns a copy of the edge keys in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []EdgeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeKey, len(g.edgeList))
	copy(out, g.edgeList)

	return out
}

// EdgeCount returns the current number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeList)
}
