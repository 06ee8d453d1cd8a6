package floor

import (
	"slices"
)

// CorridorWeight is the cost of walking one corridor. Floors are unweighted.
const CorridorWeight int64 = 1

// Edge is a directed corridor traversal. Each physical corridor is stored as
// two edges, one per walking direction.
type Edge struct {
	From   ID
	To     ID
	Weight int64
}

// Arc is an outgoing edge addressed by arena index, for algorithms that work
// on indices instead of IDs.
type Arc struct {
	To     int
	Weight int64
}

// Graph is a directed multigraph of halls. Nodes live in an arena ordered as
// they were enumerated at build time; the arena index is stable and is used
// for deterministic tie-breaking.
//
// The zero value is not usable; create graphs with [Build]. A Graph never
// changes after Build returns and is safe for concurrent readers.
type Graph struct {
	nodes []Node
	index map[ID]int
	out   [][]Arc
	edges []Edge
}

// Build creates a graph from an enumeration of halls and their corridors.
// One directed edge is inserted for every (vertex, neighbour) pair in adj,
// vertices taken in node order and neighbours in list order.
//
// Build does not check symmetry or positions; run [CheckEdgeSymmetry] and
// [CheckDistinctPositions] first, or use [Plan.Build] which does both.
// A bad node set fails with the error of [CheckUniqueIDs], and an
// [UnknownNodeError] listing every ID adj references that nodes lacks.
func Build(nodes []Node, adj Adjacency) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, 0, len(nodes)),
		index: make(map[ID]int, len(nodes)),
		out:   make([][]Arc, len(nodes)),
	}
	if err := CheckUniqueIDs(nodes); err != nil {
		return nil, err
	}
	for _, n := range nodes {
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	if unknown := g.unknownIDs(adj); len(unknown) > 0 {
		return nil, &UnknownNodeError{IDs: unknown}
	}

	for i, n := range g.nodes {
		for _, to := range adj[n.ID] {
			j := g.index[to]
			g.out[i] = append(g.out[i], Arc{To: j, Weight: CorridorWeight})
			g.edges = append(g.edges, Edge{From: n.ID, To: to, Weight: CorridorWeight})
		}
	}
	return g, nil
}

func (g *Graph) unknownIDs(adj Adjacency) []ID {
	seen := make(map[ID]bool)
	var unknown []ID
	check := func(id ID) {
		if _, ok := g.index[id]; !ok && !seen[id] {
			seen[id] = true
			unknown = append(unknown, id)
		}
	}
	for _, v := range adj.Vertices() {
		check(v)
		for _, n := range adj[v] {
			check(n)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// Node returns the hall with the given ID.
func (g *Graph) Node(id ID) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Index returns the arena index of id.
func (g *Graph) Index(id ID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// NodeAt returns the hall stored at arena index i.
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// Arcs returns the outgoing arcs of the hall at index i in insertion order.
// The slice must not be modified.
func (g *Graph) Arcs(i int) []Arc { return g.out[i] }

// Nodes returns a copy of all halls in enumeration order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of all directed edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of halls.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges, twice the corridor count
// for a symmetric floor.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the IDs reachable from id through one corridor, or nil if
// id is unknown.
func (g *Graph) Neighbors(id ID) []ID {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	ids := make([]ID, len(g.out[i]))
	for k, a := range g.out[i] {
		ids[k] = g.nodes[a.To].ID
	}
	return ids
}

// HasEdge reports whether a directed edge from→to exists.
func (g *Graph) HasEdge(from, to ID) bool {
	i, ok := g.index[from]
	if !ok {
		return false
	}
	j, ok := g.index[to]
	if !ok {
		return false
	}
	return slices.ContainsFunc(g.out[i], func(a Arc) bool { return a.To == j })
}

// IsRoute reports whether every consecutive pair of route is joined by an
// edge. Empty and single-hall routes are trivially walkable if their halls
// exist.
func (g *Graph) IsRoute(route []Node) bool {
	for _, n := range route {
		if _, ok := g.index[n.ID]; !ok {
			return false
		}
	}
	for i := 1; i < len(route); i++ {
		if !g.HasEdge(route[i-1].ID, route[i].ID) {
			return false
		}
	}
	return true
}

// IDs extracts the ID of each hall in order.
func IDs(nodes []Node) []ID {
	ids := make([]ID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
