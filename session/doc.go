// Package session ties the graphpad pieces together for an editing
// layer: one Session owns a core.Graph, the latest structural
// analysis, and the latest component coloring, and guarantees that a
// stale result is never observable after the graph mutates.
//
// Lifecycle:
//
//   - Mutations that change the store drop both snapshots; requests
//     rejected as silent no-ops (duplicate edge, self-loop, missing
//     endpoint) leave them intact, since the topology is unchanged.
//   - FindArticulationPoints and FindBridges run the same combined
//     pass - bridges are a byproduct of the low-link computation, so a
//     dedicated bridge-only pass would buy nothing - and atomically
//     replace the structure snapshot.
//   - ColorComponents replaces the coloring snapshot.
//   - ResetAnalysis clears both snapshots without touching the graph;
//     Clear additionally empties the store and resets the allocator.
//
// Counters (VertexCount, EdgeCount, CutVertexCount, BridgeCount,
// ComponentColorCount) feed a status display; analysis counters read 0
// until the corresponding analysis has run.
//
// Concurrency: a single mutex serializes all Session methods, so each
// mutation or analysis runs to completion before the next is observed
// (one writer per graph instance, per the core locking discipline).
package session
