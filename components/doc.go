// Package components partitions an undirected core.Graph into its
// connected components and assigns each one a color token for the
// rendering layer.
//
// What:
//
//   - Colorize(g, opts...) flood-fills from each unvisited vertex in
//     ascending-ID order; every vertex reached joins that component
//     and receives the same Color.
//   - Colors come from a fixed finite palette indexed by component
//     discovery order modulo the palette size. Known limitation:
//     graphs with more components than palette entries reuse colors.
//
// Why:
//
//   - Two vertices share a color token iff some path connects them,
//     which is exactly the overlay an editor wants to paint.
//
// Independence:
//
//   - The flood fill keeps its own visited state; it neither reads nor
//     disturbs the cutpoints traversal.
//
// Options:
//
//   - WithPalette(p): replace DefaultPalette with a custom one.
//
// Errors:
//
//   - ErrGraphNil: Colorize received a nil graph.
//   - ErrEmptyPalette: WithPalette received an empty palette.
//
// Complexity:
//
//   - Time O(V + E), Memory O(V).
package components
