// File: session.go
// Role: Session facade - mutation entry points with invalidation,
// analysis entry points with snapshot replacement, status counters.
package session

import (
	"sync"

	"github.com/katalvlaran/graphpad/components"
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/cutpoints"
)

// Session owns one graph plus the current analysis snapshots. Both
// snapshots are nil until their analysis runs and are replaced, never
// mutated, on recomputation; published snapshots stay valid read-only
// values even after the Session moves on.
type Session struct {
	mu        sync.Mutex
	graph     *core.Graph
	structure *cutpoints.Result
	coloring  *components.Coloring
	palette   []components.Color
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithPalette sets the palette handed to ColorComponents. An empty
// palette is ignored (the components default is kept).
func WithPalette(p []components.Color) Option {
	return func(s *Session) {
		if len(p) > 0 {
			s.palette = p
		}
	}
}

// WithGraph seeds the Session with an existing graph (for example a
// builder fixture) instead of an empty one. Nil is ignored.
func WithGraph(g *core.Graph) Option {
	return func(s *Session) {
		if g != nil {
			s.graph = g
		}
	}
}

// NewSession creates a Session over an empty graph, unless WithGraph
// supplies a seed.
func NewSession(opts ...Option) *Session {
	s := &Session{graph: core.NewGraph()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// --- mutation entry points -------------------------------------------------

// InsertVertex adds a vertex at (x, y) and invalidates the snapshots.
func (s *Session) InsertVertex(x, y float64) core.VertexID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.graph.InsertVertex(x, y)
	s.invalidate()

	return id
}

// RemoveVertex removes id and its incident edges. The snapshots are
// invalidated only when the store actually changed.
func (s *Session) RemoveVertex(id core.VertexID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.graph.RemoveVertex(id)
	if changed {
		s.invalidate()
	}

	return changed
}

// InsertEdge connects u and v; silent no-ops (self-loop, duplicate,
// missing endpoint) keep the current snapshots.
func (s *Session) InsertEdge(u, v core.VertexID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.graph.InsertEdge(u, v)
	if changed {
		s.invalidate()
	}

	return changed
}

// RemoveEdge disconnects u and v if connected.
func (s *Session) RemoveEdge(u, v core.VertexID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.graph.RemoveEdge(u, v)
	if changed {
		s.invalidate()
	}

	return changed
}

// RemoveEdgeAt removes the edge picked at canvas point (x, y).
func (s *Session) RemoveEdgeAt(x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.graph.RemoveEdgeAt(x, y)
	if changed {
		s.invalidate()
	}

	return changed
}

// NearestVertex exposes the store's vertex picking query.
func (s *Session) NearestVertex(x, y float64) (core.VertexID, bool) {
	return s.graph.NearestVertex(x, y)
}

// NearestEdge exposes the store's edge picking query.
func (s *Session) NearestEdge(x, y float64) (core.EdgeKey, bool) {
	return s.graph.NearestEdge(x, y)
}

// VertexByID exposes the store's vertex lookup for the renderer.
func (s *Session) VertexByID(id core.VertexID) (core.Vertex, bool) {
	return s.graph.VertexByID(id)
}

// Vertices exposes the store's stable vertex enumeration.
func (s *Session) Vertices() []core.VertexID { return s.graph.Vertices() }

// Edges exposes the store's insertion-ordered edge list.
func (s *Session) Edges() []core.EdgeKey { return s.graph.Edges() }

// --- analysis entry points ---------------------------------------------------

// FindArticulationPoints runs the combined structural pass, replaces
// the structure snapshot, and returns it.
func (s *Session) FindArticulationPoints() *cutpoints.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.analyzeLocked()
}

// FindBridges runs the very same combined pass as
// FindArticulationPoints: bridges fall out of the identical low-link
// computation, so recomputing both is intentional, not wasteful.
func (s *Session) FindBridges() *cutpoints.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.analyzeLocked()
}

// analyzeLocked recomputes and swaps in a fresh structure snapshot.
// Caller holds mu; the graph is never nil, so Analyze cannot fail.
func (s *Session) analyzeLocked() *cutpoints.Result {
	res, _ := cutpoints.Analyze(s.graph)
	s.structure = res

	return res
}

// ColorComponents recomputes the component labeling, replaces the
// coloring snapshot, and returns it.
func (s *Session) ColorComponents() *components.Coloring {
	s.mu.Lock()
	defer s.mu.Unlock()

	var opts []components.Option
	if s.palette != nil {
		opts = append(opts, components.WithPalette(s.palette))
	}
	c, _ := components.Colorize(s.graph, opts...)
	s.coloring = c

	return c
}

// ResetAnalysis drops both snapshots; the graph is untouched.
func (s *Session) ResetAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidate()
}

// Clear empties the graph (resetting the ID allocator) and drops both
// snapshots: the editor's "new document".
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.Clear()
	s.invalidate()
}

// invalidate drops both snapshots. Caller holds mu.
func (s *Session) invalidate() {
	s.structure = nil
	s.coloring = nil
}

// --- read accessors ----------------------------------------------------------

// Structure returns the current structural snapshot, or nil when the
// graph mutated since the last analysis (stale results are never kept).
func (s *Session) Structure() *cutpoints.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.structure
}

// Coloring returns the current component labeling, or nil.
func (s *Session) Coloring() *components.Coloring {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.coloring
}

// VertexCount returns the number of vertices in the store.
func (s *Session) VertexCount() int { return s.graph.VertexCount() }

// EdgeCount returns the number of edges in the store.
func (s *Session) EdgeCount() int { return s.graph.EdgeCount() }

// CutVertexCount returns the articulation-point count of the current
// snapshot; 0 when no analysis is current.
func (s *Session) CutVertexCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.structure == nil {
		return 0
	}

	return s.structure.CutCount()
}

// BridgeCount returns the bridge count of the current snapshot; 0 when
// no analysis is current.
func (s *Session) BridgeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.structure == nil {
		return 0
	}

	return s.structure.BridgeCount()
}

// ComponentColorCount returns the number of distinct color tokens in
// the current labeling; 0 when no labeling is current.
func (s *Session) ComponentColorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coloring == nil {
		return 0
	}

	return s.coloring.DistinctColors()
}
