package floor

import (
	"slices"
	"strconv"
)

// ID identifies a hall within one floor.
type ID string

// Node is a hall. Nodes are created once when a floor is built and never
// change afterwards.
type Node struct {
	ID   ID     // Unique within a graph
	Name string // Display label, defaults to ID
}

// Label returns the name if set, otherwise the ID.
func (n Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return string(n.ID)
}

// Position is a 2D coordinate on the floor plan. Positions are only used for
// drawing, but coincident positions point at a data-entry error and are
// rejected by [CheckDistinctPositions].
type Position struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

func (p Position) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Adjacency maps each hall to the ordered list of halls reachable through a
// single corridor. A valid adjacency is symmetric.
type Adjacency map[ID][]ID

// Vertices returns the keys of a in ascending order.
func (a Adjacency) Vertices() []ID {
	ids := make([]ID, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Positions assigns a coordinate to each hall.
type Positions map[ID]Position
