package shortest

import (
	"container/heap"
	"errors"
	"math"

	"github.com/matzehuels/hallway/pkg/floor"
)

// Infinity is the distance reported for halls the source cannot reach.
const Infinity int64 = math.MaxInt64

// ErrNilGraph is returned when a nil graph is queried.
var ErrNilGraph = errors.New("shortest: graph is nil")

// Tree holds the result of one single-source run: the best distance to
// every hall and the predecessor used to reach it.
type Tree struct {
	g      *floor.Graph
	source int
	dist   []int64
	prev   []int // -1 for the source and unreachable halls
}

// From runs Dijkstra's algorithm from source over the whole graph.
func From(g *floor.Graph, source floor.ID) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, ok := g.Index(source)
	if !ok {
		return nil, &floor.UnknownNodeError{IDs: []floor.ID{source}}
	}

	n := g.NodeCount()
	t := &Tree{
		g:      g,
		source: s,
		dist:   make([]int64, n),
		prev:   make([]int, n),
	}
	for i := range n {
		t.dist[i] = Infinity
		t.prev[i] = -1
	}
	t.dist[s] = 0

	done := make([]bool, n)
	pq := &queue{{node: s, dist: 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(item)
		if done[it.node] {
			continue // stale entry
		}
		done[it.node] = true

		for _, a := range g.Arcs(it.node) {
			if done[a.To] {
				continue
			}
			if d := it.dist + a.Weight; d < t.dist[a.To] {
				t.dist[a.To] = d
				t.prev[a.To] = it.node
				heap.Push(pq, item{node: a.To, dist: d})
			}
		}
	}
	return t, nil
}

// Source returns the hall the tree was grown from.
func (t *Tree) Source() floor.Node { return t.g.NodeAt(t.source) }

// Reachable reports whether target can be reached from the source.
// Unknown IDs are unreachable.
func (t *Tree) Reachable(target floor.ID) bool {
	i, ok := t.g.Index(target)
	return ok && t.dist[i] != Infinity
}

// Distance returns the cost of the shortest path from the source to target.
func (t *Tree) Distance(target floor.ID) (int64, error) {
	i, err := t.lookup(target)
	if err != nil {
		return 0, err
	}
	return t.dist[i], nil
}

// Path returns the halls along the shortest path, source first and target
// last.
func (t *Tree) Path(target floor.ID) ([]floor.Node, error) {
	i, err := t.lookup(target)
	if err != nil {
		return nil, err
	}
	var rev []floor.Node
	for v := i; v != -1; v = t.prev[v] {
		rev = append(rev, t.g.NodeAt(v))
	}
	path := make([]floor.Node, len(rev))
	for k, n := range rev {
		path[len(rev)-1-k] = n
	}
	return path, nil
}

func (t *Tree) lookup(target floor.ID) (int, error) {
	i, ok := t.g.Index(target)
	if !ok {
		return 0, &floor.UnknownNodeError{IDs: []floor.ID{target}}
	}
	if t.dist[i] == Infinity {
		return 0, &floor.UnreachableError{From: t.g.NodeAt(t.source).ID, To: target}
	}
	return i, nil
}

// Distance returns the cost of the shortest path from source to target.
func Distance(g *floor.Graph, source, target floor.ID) (int64, error) {
	t, err := From(g, source)
	if err != nil {
		return 0, err
	}
	return t.Distance(target)
}

// Path returns the halls along a shortest path from source to target,
// source first and target last.
func Path(g *floor.Graph, source, target floor.ID) ([]floor.Node, error) {
	t, err := From(g, source)
	if err != nil {
		return nil, err
	}
	return t.Path(target)
}

// item is a queue entry. Several entries may exist for one hall; only the
// first one popped counts.
type item struct {
	node int
	dist int64
}

// queue is a min-heap ordered by distance, then arena index.
type queue []item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].node < q[j].node
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
