package floor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned by [Build] when a hall has an empty identifier.
	ErrEmptyID = errors.New("hall ID must not be empty")

	// ErrDuplicateNode is returned by [Build] when two halls share an ID.
	// Hall IDs must be unique within one floor.
	ErrDuplicateNode = errors.New("duplicate hall ID")

	// ErrUnknownFloor is returned by [Building.Floor] for a name no floor has.
	ErrUnknownFloor = errors.New("no floor named")
)

// Pair is a directed (vertex, neighbour) reference taken from an [Adjacency].
type Pair struct {
	Vertex    ID
	Neighbour ID
}

// InconsistentGraphError is returned by [CheckEdgeSymmetry]. It lists every
// pair whose reverse edge is missing, in the order they were found.
type InconsistentGraphError struct {
	Pairs []Pair
}

func (e *InconsistentGraphError) Error() string {
	lines := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		lines[i] = fmt.Sprintf("%s is in %s's neighbours, but %s is not in %s's neighbours",
			p.Neighbour, p.Vertex, p.Vertex, p.Neighbour)
	}
	return "inconsistent corridors:\n" + strings.Join(lines, "\n")
}

// OverlappingNodesError is returned by [CheckDistinctPositions]. Each group
// holds the IDs of halls sharing one coordinate.
type OverlappingNodesError struct {
	Groups []Overlap
}

// Overlap is a set of halls placed on the same coordinate.
type Overlap struct {
	At  Position
	IDs []ID
}

func (e *OverlappingNodesError) Error() string {
	parts := make([]string, len(e.Groups))
	for i, g := range e.Groups {
		ids := make([]string, len(g.IDs))
		for j, id := range g.IDs {
			ids[j] = string(id)
		}
		parts[i] = fmt.Sprintf("%s at %s", strings.Join(ids, ", "), g.At)
	}
	return "there are at least two halls sharing position: " + strings.Join(parts, "; ")
}

// UnknownNodeError is returned when an ID is referenced that the graph does
// not contain.
type UnknownNodeError struct {
	IDs []ID
}

func (e *UnknownNodeError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = string(id)
	}
	if len(ids) == 1 {
		return "unknown hall " + ids[0]
	}
	return "unknown halls " + strings.Join(ids, ", ")
}

// UnreachableError is returned when no corridor path joins From and To.
type UnreachableError struct {
	From ID
	To   ID
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("hall %s is unreachable from hall %s", e.To, e.From)
}
