// Package cutpoints implements the combined structural analysis of an
// undirected core.Graph: articulation points (cut vertices), bridges,
// and the classification of every edge as a DFS tree edge or back
// edge, all from one depth-first pass (the low-link method).
//
// What:
//
//   - Analyze(g) walks every connected component once, roots chosen in
//     ascending-ID order, and returns an immutable Result holding four
//     sets: cut vertices, bridges, tree edges, back edges.
//   - Bridges are a byproduct of the same low-link computation; there
//     is deliberately no separate bridge-only pass.
//
// How:
//
//   - Each vertex gets a discovery time and a low-link value (the
//     smallest discovery time reachable from its subtree via at most
//     one back edge).
//   - A root is a cut vertex iff its second or later DFS child opens a
//     new subtree; a non-root u is a cut vertex iff some child v has
//     low[v] >= disc[u]; a tree edge (u,v) is a bridge iff
//     low[v] > disc[u].
//
// Result invariants (enforced by the test suite):
//
//   - Bridges ⊆ tree edges; tree edges ∩ back edges = ∅.
//   - Per component, tree ∪ back covers exactly the component's edges.
//   - low[u] <= disc[u] for every visited u.
//
// Complexity:
//
//   - Time O(V + E), Memory O(V) for the traversal state plus the
//     recursion stack (one frame per vertex on the deepest path).
//
// Errors:
//
//   - ErrGraphNil: Analyze received a nil graph.
package cutpoints
