package floor

import (
	"cmp"
	"fmt"
	"slices"
)

// CheckUniqueIDs fails when a hall has an empty ID or shares its ID with an
// earlier hall. The error wraps [ErrEmptyID] or [ErrDuplicateNode] and names
// the first offending hall.
func CheckUniqueIDs(nodes []Node) error {
	seen := make(map[ID]bool, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("%w (hall #%d)", ErrEmptyID, i+1)
		}
		if seen[n.ID] {
			return fmt.Errorf("%w %q", ErrDuplicateNode, n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}

// CheckEdgeSymmetry reports every corridor that is only listed in one
// direction: if B is one of A's neighbours, A must be one of B's.
//
// All violations are collected before returning, so the caller sees the full
// defect list. Vertices are scanned in ascending ID order and neighbours in
// list order. A neighbour without an adjacency entry of its own counts as a
// missing reverse edge.
func CheckEdgeSymmetry(adj Adjacency) error {
	var pairs []Pair
	for _, v := range adj.Vertices() {
		for _, n := range adj[v] {
			if !slices.Contains(adj[n], v) {
				pairs = append(pairs, Pair{Vertex: v, Neighbour: n})
			}
		}
	}
	if len(pairs) > 0 {
		return &InconsistentGraphError{Pairs: pairs}
	}
	return nil
}

// CheckDistinctPositions fails when two or more halls share a coordinate.
// The returned [OverlappingNodesError] names every colliding group; IDs in a
// group are sorted and groups are ordered by their first ID.
func CheckDistinctPositions(pos Positions) error {
	byCoord := make(map[Position][]ID, len(pos))
	for id, p := range pos {
		byCoord[p] = append(byCoord[p], id)
	}
	if len(byCoord) == len(pos) {
		return nil
	}

	var groups []Overlap
	for p, ids := range byCoord {
		if len(ids) < 2 {
			continue
		}
		slices.Sort(ids)
		groups = append(groups, Overlap{At: p, IDs: ids})
	}
	slices.SortFunc(groups, func(a, b Overlap) int { return cmp.Compare(a.IDs[0], b.IDs[0]) })
	return &OverlappingNodesError{Groups: groups}
}
