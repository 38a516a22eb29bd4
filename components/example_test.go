// File: components/example_test.go
package components_test

import (
	"fmt"

	"github.com/katalvlaran/graphpad/components"
	"github.com/katalvlaran/graphpad/core"
)

// ExampleColorize labels a graph of two islands: a triangle and a
// single edge. Each island gets the next palette token.
func ExampleColorize() {
	g := core.NewGraph()
	v := make([]core.VertexID, 5)
	for i := range v {
		v[i] = g.InsertVertex(float64(60*i), 60)
	}
	g.InsertEdge(v[0], v[1])
	g.InsertEdge(v[1], v[2])
	g.InsertEdge(v[0], v[2])
	g.InsertEdge(v[3], v[4])

	c, _ := components.Colorize(g)
	fmt.Println("components:", c.Components)
	fmt.Println("same island 0,2:", c.SameComponent(v[0], v[2]))
	fmt.Println("same island 2,3:", c.SameComponent(v[2], v[3]))

	// Output:
	// components: 2
	// same island 0,2: true
	// same island 2,3: false
}
