// Package core defines the central Graph, Vertex and EdgeKey types.
//
// This file declares the identifier and key types, the Vertex record,
// the Graph container and its constructor.
package core

import "sync"

// VertexID uniquely identifies a vertex within one Graph session.
// IDs are allocated monotonically and never reused, even after the
// vertex is removed; only Clear resets the allocator.
type VertexID int64

// EdgeKey is the canonical identity of an undirected edge: the two
// endpoint IDs ordered ascending, so (u,v) and (v,u) compare equal.
// It is a comparable value type, usable directly as a map key.
type EdgeKey struct {
	// A is the smaller endpoint ID.
	A VertexID
	// B is the larger endpoint ID.
	B VertexID
}

// MakeEdgeKey builds the canonical key for the unordered pair {u, v}.
// Complexity: O(1)
func MakeEdgeKey(u, v VertexID) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{A: u, B: v}
}

// Loop reports whether the key denotes a self-loop (both endpoints
// equal). The editor never constructs loops, but analyses tolerate
// them defensively.
func (k EdgeKey) Loop() bool { return k.A == k.B }

// Other returns the endpoint opposite to id. If id is not an endpoint
// of k, it returns A.
func (k EdgeKey) Other(id VertexID) VertexID {
	if id == k.A {
		return k.B
	}

	return k.A
}

// Vertex is one node of the graph as the editing layer sees it.
//
// Label is the vertex count at the moment of insertion; removals do
// not renumber surviving labels. X and Y are canvas coordinates owned
// by the editing layer; analyses ignore them.
type Vertex struct {
	ID    VertexID
	Label int
	X, Y  float64
}

// AdjacencyView maps each vertex ID to its neighbor IDs in
// edge-insertion order. It is a point-in-time snapshot: built fresh
// before each analysis run, never cached, discarded afterwards.
type AdjacencyView map[VertexID][]VertexID

// Graph is the mutable store of topology: the source of truth for
// vertices and edges. All methods are safe for concurrent use; a
// single mutex serializes writers against readers so every analysis
// observes a consistent snapshot.
type Graph struct {
	mu sync.RWMutex

	nextID   VertexID             // monotone allocator, reset only by Clear
	vertices map[VertexID]*Vertex // vertex catalog
	edgeList []EdgeKey            // edges in insertion order
	edgeSet  map[EdgeKey]struct{} // membership index over edgeList
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[VertexID]*Vertex),
		edgeList: make([]EdgeKey, 0),
		edgeSet:  make(map[EdgeKey]struct{}),
	}
}

// Clear empties the store - every vertex and edge - and resets the ID
// allocator, so the next InsertVertex yields ID 0 again. Intended for
// the editor's "new document" action.
// Complexity: O(1) amortized (old storage is released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID = 0
	g.vertices = make(map[VertexID]*Vertex)
	g.edgeList = g.edgeList[:0]
	g.edgeSet = make(map[EdgeKey]struct{})
}
