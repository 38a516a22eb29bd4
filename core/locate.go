// File: locate.go
// Role: geometric picking queries for the editing layer.
//
// Determinism:
//   - Candidates are scanned in the stable enumeration order
//     (ascending ID for vertices, insertion order for edges); only a
//     strictly smaller distance displaces the current pick, so ties
//     resolve to the first match.
package core

import (
	"math"
	"sort"
)

// Pick radii in canvas units. A vertex is picked within
// VertexPickRadius of its center; an edge within EdgePickRadius of
// the segment (the smaller radius keeps edge picks from shadowing
// nearby vertices).
const (
	VertexPickRadius = 12.0
	EdgePickRadius   = 6.0
)

// NearestVertex returns the vertex closest to point (x, y) among
// those within VertexPickRadius, and whether one matched.
// Complexity: O(V log V) for the ordered scan.
func (g *Graph) NearestVertex(x, y float64) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Stable scan order: ascending ID (collected under the same lock
	// to avoid re-entrant locking).
	ids := make([]VertexID, 0, len(g.vertices))
	var id VertexID
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	best := VertexPickRadius
	var pick VertexID
	found := false
	for _, id = range ids {
		v := g.vertices[id]
		d := math.Hypot(v.X-x, v.Y-y)
		if d < best {
			best, pick, found = d, id, true
		}
	}

	return pick, found
}

// NearestEdge returns the edge whose segment lies closest to point
// (x, y) among those within EdgePickRadius, and whether one matched.
// Edges whose endpoint positions are unavailable are skipped.
// Complexity: O(E)
func (g *Graph) NearestEdge(x, y float64) (EdgeKey, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := EdgePickRadius
	var pick EdgeKey
	found := false
	var k EdgeKey
	for _, k = range g.edgeList {
		a, okA := g.vertices[k.A]
		b, okB := g.vertices[k.B]
		if !okA || !okB {
			continue
		}
		d := pointSegmentDistance(x, y, a.X, a.Y, b.X, b.Y)
		if d < best {
			best, pick, found = d, k, true
		}
	}

	return pick, found
}

// RemoveEdgeAt removes the edge picked by NearestEdge at (x, y);
// silent no-op when nothing is within EdgePickRadius. Reports whether
// the store changed.
// Complexity: O(E)
func (g *Graph) RemoveEdgeAt(x, y float64) bool {
	k, ok := g.NearestEdge(x, y)
	if !ok {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(k)
}

// pointSegmentDistance returns the distance from point (px, py) to
// the segment (ax, ay)-(bx, by), clamping the perpendicular foot to
// the segment so endpoints bound the answer. Degenerate segments
// (coincident endpoints) fall back to point distance.
func pointSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	// Projection parameter along the segment, clamped to [0, 1].
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
