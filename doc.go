// Package graphpad is an in-memory engine for interactively built
// undirected graphs and the structural analyses an editor wants to
// overlay on them: articulation points, bridges, DFS tree/back edge
// classification, and connected-component coloring.
//
// What graphpad gives you:
//
//   - Core primitives: a mutable vertex/edge store with silent no-op
//     semantics for invalid edits, geometric picking queries, and a
//     fresh adjacency snapshot per analysis run
//   - Structure: one depth-first pass computing cut vertices, bridges,
//     tree edges and back edges together (low-link method)
//   - Components: flood-fill labeling with a cycling color palette
//   - Fixtures: deterministic canned graphs for demos and tests
//   - Session: result ownership, invalidation on mutation, counters
//
// Why graphpad?
//
//   - Editor-friendly - invalid edits are silent no-ops, never errors
//   - Deterministic - enumeration order is explicit (ascending ID),
//     so analyses reproduce exactly across runs
//   - Pure Go - no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/       — Graph, Vertex, EdgeKey; mutation, picking, adjacency
//	cutpoints/  — articulation points, bridges, tree/back edges
//	components/ — connected-component coloring
//	builder/    — deterministic fixture constructors
//	session/    — analysis-result lifecycle and counters
//
// Quick ASCII example:
//
//	    0───1───2
//	        │   │
//	        3───4
//
//	vertex 1 cuts 0 off; edge 0-1 is the lone bridge.
//
//	go get github.com/katalvlaran/graphpad
package graphpad
