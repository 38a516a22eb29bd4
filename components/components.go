// File: components.go
// Role: BFS flood fill assigning one palette color per component.
package components

import "github.com/katalvlaran/graphpad/core"

// Colorize partitions g into connected components and labels every
// vertex with its component's color token. Seeds are taken in
// ascending-ID order, so component discovery order - and therefore
// the palette assignment - is deterministic for a given topology.
//
// The traversal state is private to this call; it is independent of
// any cutpoints analysis run before or after.
//
// Complexity: O(V + E) time, O(V) memory.
func Colorize(g *core.Graph, opts ...Option) (*Coloring, error) {
	// 1. Validate input and resolve options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Snapshot the topology for this run.
	adj := g.AdjacencyView()
	seeds := g.Vertices()

	coloring := &Coloring{
		Colors: make(map[core.VertexID]Color, len(seeds)),
	}
	seen := make(map[core.VertexID]bool, len(seeds))

	// 3. Flood fill from each unvisited seed.
	var seed core.VertexID
	for _, seed = range seeds {
		if seen[seed] {
			continue
		}
		color := o.palette[coloring.Components%len(o.palette)]
		coloring.Components++

		// BFS collects the whole component under one color.
		queue := []core.VertexID{seed}
		seen[seed] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			coloring.Colors[u] = color
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return coloring, nil
}
