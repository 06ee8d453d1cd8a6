// Package shortest computes shortest corridor paths between halls.
//
// # Overview
//
// The package runs Dijkstra's algorithm over a [floor.Graph]. Corridors on a
// floor have unit weight, so distances count corridors walked, but the
// implementation sums whatever non-negative weight each edge carries.
//
// Two levels of API are provided:
//
//   - [Distance] and [Path] answer a single source/target query
//   - [From] runs once from a source and returns a [Tree] that answers
//     queries for any target without recomputing
//
// Distance(g, s, t) always equals the summed edge weights along Path(g, s, t).
// When s == t the path is [s] and the distance is 0.
//
// # Determinism
//
// The priority queue orders entries by distance, then by arena index, and a
// predecessor is only replaced by a strictly shorter path. Neighbours are
// relaxed in corridor insertion order. Repeated queries on the same graph
// therefore return the same path even when several shortest paths exist.
//
// # Errors
//
// Targets that cannot be reached yield [*floor.UnreachableError]. IDs the
// graph does not contain yield [*floor.UnknownNodeError].
//
// # Concurrency
//
// All state lives in the returned [Tree]; concurrent calls on the same graph
// are safe.
package shortest
