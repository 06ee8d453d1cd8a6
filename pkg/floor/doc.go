// Package floor models a building floor as a graph of halls joined by
// corridors.
//
// # Overview
//
// A floor starts as plain data: a list of halls ([Node]), an [Adjacency]
// naming each hall's neighbours, and [Positions] placing every hall on the
// plan. Two checks guard that data before a graph is built:
//
//   - [CheckEdgeSymmetry]: every corridor is listed from both ends
//   - [CheckDistinctPositions]: no two halls share a coordinate
//
// [Build] then turns halls and adjacency into an immutable [Graph]. Each
// corridor becomes two directed edges, one per walking direction, so
// traversal never depends on which end a corridor was listed from.
//
// # Usage
//
//	plan := &floor.Plan{
//	    Halls:     []floor.Node{{ID: "0"}, {ID: "1"}},
//	    Corridors: floor.Adjacency{"0": {"1"}, "1": {"0"}},
//	    Positions: floor.Positions{"0": {X: 0, Y: 0}, "1": {X: 1, Y: 0}},
//	}
//	g, err := plan.Build()
//
// # Identity
//
// Halls are identified by string [ID]s. Inside a graph each hall also has an
// arena index, its position in the enumeration passed to [Build]. Algorithms
// in this module break ties by lowest index, which keeps results stable
// across runs.
//
// # Errors
//
// Validation failures are returned as [*InconsistentGraphError] and
// [*OverlappingNodesError]; both list every defect found. References to
// halls that do not exist yield [*UnknownNodeError]. Path queries in other
// packages report [*UnreachableError].
package floor
