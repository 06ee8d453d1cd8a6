// Package waypoint plans a walk through a set of mandatory halls.
//
// # Algorithm
//
// Starting from a hall, the router repeatedly walks to the nearest waypoint
// it has not visited yet:
//
//  1. Measure the shortest-path distance from the current hall to every
//     remaining waypoint.
//  2. Pick the closest one. On equal distance the hall enumerated first on
//     the floor (lowest arena index) wins.
//  3. Append the shortest path to it, minus its first hall, which is already
//     the last hall of the route.
//  4. Continue from there until no waypoint remains.
//
// This is a greedy nearest-neighbour heuristic. A chosen waypoint is never
// reconsidered, so the total distance is not guaranteed to be minimal.
//
// # Usage
//
//	route, err := waypoint.Route(g, "0", []floor.ID{"18", "17", "24"})
//
// [Compute] returns the richer [Itinerary] with per-leg details and honours
// context cancellation between legs. [Batch] routes many jobs concurrently;
// graphs are immutable so jobs may share one.
//
// # Edge Cases
//
//   - No waypoints: the route is just the start hall.
//   - The start hall listed as a waypoint: it is visited at distance 0 and
//     the route is unchanged.
//   - Repeated waypoints are visited once.
//   - A waypoint that cannot be reached fails the whole call with
//     [*floor.UnreachableError].
package waypoint
