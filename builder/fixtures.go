// File: fixtures.go
// Role: Build orchestrator and the fixture/generator constructors.
//
// Contract (strict):
//   - Constructors validate parameters early and return sentinel
//     errors; they never panic.
//   - Vertex insertion order is ascending index; edge emission order
//     is fixed per shape. Positions are fixed demo-canvas coordinates.
package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphpad/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a size parameter below the shape minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies one deterministic mutation batch to g.
// Implementations must validate early, return sentinels, never panic.
type Constructor func(g *core.Graph) error

// Build creates an empty core.Graph and applies every constructor in
// order. The first error aborts and is wrapped with Build context; no
// partial cleanup is attempted.
func Build(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// insertRow adds n vertices spaced along a horizontal line and
// returns their IDs; shared by the parametric generators.
func insertRow(g *core.Graph, n int, y float64) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.InsertVertex(float64(80+i*80), y)
	}

	return ids
}

// connect adds the listed edges over ids by positional index.
func connect(g *core.Graph, ids []core.VertexID, edges [][2]int) {
	for _, e := range edges {
		g.InsertEdge(ids[e[0]], ids[e[1]])
	}
}

// Simple returns the canned 5-vertex / 5-edge demo shape:
//
//	0───1───2
//	    │   │
//	    3───4
//
// Vertex 1 is its only cut vertex and edge 0-1 its only bridge; the
// 4-cycle 1-2-4-3-1 contributes neither.
func Simple() Constructor {
	return func(g *core.Graph) error {
		ids := []core.VertexID{
			g.InsertVertex(80, 120),
			g.InsertVertex(200, 120),
			g.InsertVertex(320, 60),
			g.InsertVertex(320, 180),
			g.InsertVertex(440, 120),
		}
		connect(g, ids, [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 4}, {3, 4}})

		return nil
	}
}

// Complex returns the canned 7-vertex / 8-edge demo shape: triangles
// 1-2-3 and 4-5-6 joined by bridge 2-4, with pendant 0 on 1.
//
// Cut vertices: 1, 2 and 4. Bridges: 0-1 and 2-4.
func Complex() Constructor {
	return func(g *core.Graph) error {
		ids := []core.VertexID{
			g.InsertVertex(60, 150),
			g.InsertVertex(160, 150),
			g.InsertVertex(280, 90),
			g.InsertVertex(280, 210),
			g.InsertVertex(400, 90),
			g.InsertVertex(520, 40),
			g.InsertVertex(520, 140),
		}
		connect(g, ids, [][2]int{
			{0, 1}, {1, 2}, {1, 3}, {2, 3}, {2, 4}, {4, 5}, {4, 6}, {5, 6},
		})

		return nil
	}
}

// Path returns a Constructor building the path P_n (n >= 2):
// edges (i-1)-(i) for i = 1..n-1.
func Path(n int) Constructor {
	const min = 2

	return func(g *core.Graph) error {
		if n < min {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
		}
		ids := insertRow(g, n, 120)
		for i := 1; i < n; i++ {
			g.InsertEdge(ids[i-1], ids[i])
		}

		return nil
	}
}

// Cycle returns a Constructor building the cycle C_n (n >= 3):
// the path P_n closed by edge (n-1)-(0).
func Cycle(n int) Constructor {
	const min = 3

	return func(g *core.Graph) error {
		if n < min {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
		}
		ids := make([]core.VertexID, n)
		for i := 0; i < n; i++ {
			// Spread vertices around a demo-canvas circle.
			angle := 2 * math.Pi * float64(i) / float64(n)
			ids[i] = g.InsertVertex(250+150*math.Cos(angle), 250+150*math.Sin(angle))
		}
		for i := 1; i < n; i++ {
			g.InsertEdge(ids[i-1], ids[i])
		}
		g.InsertEdge(ids[n-1], ids[0])

		return nil
	}
}

// Triangle returns Cycle(3), the smallest biconnected shape.
func Triangle() Constructor { return Cycle(3) }
