// File: methods_vertices.go
// Role: vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending; rely on it for
//     reproducible traversal roots and stable test assertions.
package core

import "sort"

// InsertVertex allocates a fresh VertexID, labels the vertex with the
// current vertex count, stores the position, and returns the new ID.
// It always succeeds; IDs are never reused within a session.
// Complexity: O(1) amortized.
func (g *Graph) InsertVertex(x, y float64) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++

	g.vertices[id] = &Vertex{
		ID:    id,
		Label: len(g.vertices), // positional label, never renumbered
		X:     x,
		Y:     y,
	}

	return id
}

// RemoveVertex deletes the vertex and every edge incident to it
// (cascade). Missing vertex is a silent no-op. Surviving labels are
// not renumbered. Reports whether the store changed.
// Complexity: O(E).
func (g *Graph) RemoveVertex(id VertexID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return false
	}
	delete(g.vertices, id)

	// Splice out incident edges, preserving insertion order of the rest.
	kept := g.edgeList[:0]
	var k EdgeKey
	for _, k = range g.edgeList {
		if k.A == id || k.B == id {
			delete(g.edgeSet, k)
			continue
		}
		kept = append(kept, k)
	}
	g.edgeList = kept

	return true
}

// HasVertex reports whether id is present.
// Complexity: O(1)
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexByID returns a copy of the vertex record and whether it exists.
// Returning a copy keeps the catalog immutable from outside.
// Complexity: O(1)
func (g *Graph) VertexByID(id VertexID) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return *v, true
}

// Vertices returns all vertex IDs in ascending order - the stable
// enumeration surface behind every deterministic traversal.
// Complexity: O(V log V)
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VertexID, 0, len(g.vertices))
	var id VertexID
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id; 0 when the
// vertex is absent or isolated.
// Complexity: O(E)
func (g *Graph) Degree(id VertexID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := 0
	var k EdgeKey
	for _, k = range g.edgeList {
		if k.A == id || k.B == id {
			d++
		}
	}

	return d
}
