// Package core provides the fundamental in-memory Graph for graphpad:
// an undirected simple graph built one click at a time by an editing
// layer, then analyzed by the cutpoints and components packages.
//
// What:
//
//   - Graph stores vertices (stable numeric IDs, display labels, 2D
//     positions) and edges (canonical unordered ID pairs).
//   - Mutators follow editor semantics: invalid requests (self-loop,
//     duplicate edge, missing endpoint) are silent no-ops reported by
//     a bool, never errors.
//   - Geometric picking: nearest vertex / nearest edge to a point,
//     within fixed pick radii, ties broken by enumeration order.
//   - AdjacencyView() derives a fresh neighbor snapshot in
//     edge-insertion order for each analysis run.
//
// Why:
//
//   - Interactive editors need forgiving mutation and reproducible
//     analysis; both fall out of explicit enumeration order
//     (ascending VertexID, edge-insertion order) rather than map
//     iteration order.
//
// Determinism:
//
//   - VertexIDs are allocated monotonically and never reused within a
//     session (Clear resets the allocator).
//   - Vertices() enumerates ascending by ID; Edges() in insertion
//     order. Picking ties resolve to the first match in those orders.
//
// Concurrency:
//
//   - A single sync.RWMutex guards the whole store: one writer or many
//     readers. Analyses read through snapshot accessors and therefore
//     observe a consistent topology.
//
// Complexity:
//
//   - Mutation: O(1) amortized for inserts; O(E) for removals.
//   - AdjacencyView: O(V + E). Picking: O(V) / O(E).
package core
