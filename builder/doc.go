// Package builder provides deterministic fixture constructors for
// graphpad graphs: the two canned demo shapes ("simple" and "complex")
// plus small parametric generators used throughout the test suites.
//
// What:
//
//   - Build(cons...) creates a fresh core.Graph and applies each
//     Constructor in order; same constructors, same graph, always.
//   - Simple(): 5 vertices / 5 edges - one cut vertex, one bridge.
//   - Complex(): 7 vertices / 8 edges - two triangles joined through a
//     bridge, three cut vertices.
//   - Path(n), Cycle(n), Triangle(): building blocks for tests.
//
// Determinism:
//
//   - Constructors insert vertices in ascending index order and edges
//     in a fixed documented order, so analyses over fixtures are
//     byte-for-byte reproducible.
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter below the shape minimum.
//   - ErrNilConstructor: Build received a nil Constructor.
package builder
