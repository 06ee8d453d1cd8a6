package waypoint

import (
	"context"
	"errors"
	"slices"

	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/shortest"
)

// ErrNilGraph is returned when routing over a nil graph.
var ErrNilGraph = errors.New("waypoint: graph is nil")

// Leg is one shortest-path segment of a route.
type Leg struct {
	From     floor.Node
	To       floor.Node
	Path     []floor.Node // From first, To last
	Distance int64
}

// Itinerary is a computed route together with how it was assembled.
type Itinerary struct {
	Start    floor.Node
	Order    []floor.Node // waypoints in the order they were reached
	Legs     []Leg
	Route    []floor.Node // the walked halls, Start first
	Distance int64        // sum of leg distances
}

// Route returns the walk starting at start that visits every hall in
// mustVisit, using the nearest-unvisited-waypoint heuristic.
func Route(g *floor.Graph, start floor.ID, mustVisit []floor.ID) ([]floor.Node, error) {
	it, err := Compute(context.Background(), g, start, mustVisit)
	if err != nil {
		return nil, err
	}
	return it.Route, nil
}

// Compute plans the route like [Route] and returns the full [Itinerary].
// ctx is checked before each leg; a cancelled context aborts with ctx.Err().
func Compute(ctx context.Context, g *floor.Graph, start floor.ID, mustVisit []floor.ID) (*Itinerary, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	frontier, err := resolve(g, start, mustVisit)
	if err != nil {
		return nil, err
	}

	current, _ := g.Node(start)
	it := &Itinerary{
		Start: current,
		Route: []floor.Node{current},
	}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tree, err := shortest.From(g, current.ID)
		if err != nil {
			return nil, err
		}
		pick, dist, err := nearest(g, tree, frontier)
		if err != nil {
			return nil, err
		}

		next := g.NodeAt(frontier[pick])
		path, err := tree.Path(next.ID)
		if err != nil {
			return nil, err
		}

		it.Legs = append(it.Legs, Leg{From: current, To: next, Path: path, Distance: dist})
		it.Order = append(it.Order, next)
		it.Route = append(it.Route, path[1:]...)
		it.Distance += dist

		current = next
		frontier = slices.Delete(frontier, pick, pick+1)
	}
	return it, nil
}

// resolve checks every ID and returns the distinct waypoints as arena
// indices in ascending order, so a scan meets lower indices first.
func resolve(g *floor.Graph, start floor.ID, mustVisit []floor.ID) ([]int, error) {
	var unknown []floor.ID
	if _, ok := g.Index(start); !ok {
		unknown = append(unknown, start)
	}
	frontier := make([]int, 0, len(mustVisit))
	for _, id := range mustVisit {
		i, ok := g.Index(id)
		if !ok {
			if !slices.Contains(unknown, id) {
				unknown = append(unknown, id)
			}
			continue
		}
		if !slices.Contains(frontier, i) {
			frontier = append(frontier, i)
		}
	}
	if len(unknown) > 0 {
		return nil, &floor.UnknownNodeError{IDs: unknown}
	}
	slices.Sort(frontier)
	return frontier, nil
}

// nearest returns the position in frontier of the closest waypoint and its
// distance. Only a strictly smaller distance replaces the current best.
func nearest(g *floor.Graph, tree *shortest.Tree, frontier []int) (int, int64, error) {
	best, bestDist := -1, shortest.Infinity
	for k, i := range frontier {
		d, err := tree.Distance(g.NodeAt(i).ID)
		if err != nil {
			return 0, 0, err
		}
		if best == -1 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, bestDist, nil
}
