// Package cutpoints defines the Result type and sentinel errors for
// the structural analysis pass.
package cutpoints

import (
	"errors"
	"sort"

	"github.com/katalvlaran/graphpad/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Analyze.
var ErrGraphNil = errors.New("cutpoints: graph is nil")

// Result is one immutable analysis snapshot. Every Analyze call
// allocates a fresh Result; callers must treat a published Result as
// read-only and replace it wholesale on recomputation.
type Result struct {
	// Cut flags each articulation point.
	Cut map[core.VertexID]bool

	// TreeEdges holds the edges traversed into unvisited vertices.
	TreeEdges map[core.EdgeKey]bool

	// BackEdges holds the edges connecting a vertex to an already
	// visited non-parent ancestor; disjoint from TreeEdges.
	BackEdges map[core.EdgeKey]bool

	// Bridges holds the tree edges whose removal disconnects their
	// component. Always a subset of TreeEdges.
	Bridges map[core.EdgeKey]bool
}

// newResult allocates the four empty sets.
func newResult() *Result {
	return &Result{
		Cut:       make(map[core.VertexID]bool),
		TreeEdges: make(map[core.EdgeKey]bool),
		BackEdges: make(map[core.EdgeKey]bool),
		Bridges:   make(map[core.EdgeKey]bool),
	}
}

// IsCut reports whether id is an articulation point.
func (r *Result) IsCut(id core.VertexID) bool { return r.Cut[id] }

// IsBridge reports whether the unordered pair {u, v} is a bridge.
func (r *Result) IsBridge(u, v core.VertexID) bool {
	return r.Bridges[core.MakeEdgeKey(u, v)]
}

// IsTreeEdge reports whether {u, v} was classified as a tree edge.
func (r *Result) IsTreeEdge(u, v core.VertexID) bool {
	return r.TreeEdges[core.MakeEdgeKey(u, v)]
}

// IsBackEdge reports whether {u, v} was classified as a back edge.
func (r *Result) IsBackEdge(u, v core.VertexID) bool {
	return r.BackEdges[core.MakeEdgeKey(u, v)]
}

// CutVertices returns the articulation points in ascending ID order.
func (r *Result) CutVertices() []core.VertexID {
	out := make([]core.VertexID, 0, len(r.Cut))
	var id core.VertexID
	for id = range r.Cut {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// CutCount returns the number of articulation points.
func (r *Result) CutCount() int { return len(r.Cut) }

// BridgeCount returns the number of bridges.
func (r *Result) BridgeCount() int { return len(r.Bridges) }
