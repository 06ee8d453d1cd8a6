package floor_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/hallway/pkg/floor"
)

func TestCheckEdgeSymmetry_Symmetric(t *testing.T) {
	adj := floor.Adjacency{
		"0": {"1", "2"},
		"1": {"0", "2"},
		"2": {"0", "1"},
	}
	if err := floor.CheckEdgeSymmetry(adj); err != nil {
		t.Errorf("CheckEdgeSymmetry() error = %v", err)
	}
}

func TestCheckEdgeSymmetry_Empty(t *testing.T) {
	for _, adj := range []floor.Adjacency{nil, {}} {
		if err := floor.CheckEdgeSymmetry(adj); err != nil {
			t.Errorf("CheckEdgeSymmetry(%v) error = %v", adj, err)
		}
	}
}

func TestCheckEdgeSymmetry_OneWayEdge(t *testing.T) {
	adj := floor.Adjacency{
		"0": {"1", "2"},
		"1": {"0"},
		"2": {"0"},
	}
	adj["1"] = append(adj["1"], "2")

	err := floor.CheckEdgeSymmetry(adj)
	var ie *floor.InconsistentGraphError
	if !errors.As(err, &ie) {
		t.Fatalf("CheckEdgeSymmetry() error = %v, want InconsistentGraphError", err)
	}
	if want := []floor.Pair{{Vertex: "1", Neighbour: "2"}}; !reflect.DeepEqual(ie.Pairs, want) {
		t.Errorf("Pairs = %v, want %v", ie.Pairs, want)
	}
	if !strings.Contains(err.Error(), "2 is in 1's neighbours, but 1 is not in 2's neighbours") {
		t.Errorf("Error() = %q", err)
	}
}

func TestCheckEdgeSymmetry_ReportsEveryViolation(t *testing.T) {
	adj := floor.Adjacency{
		"a": {"b", "c"},
		"b": {},
		"c": {"a", "d"},
	}

	err := floor.CheckEdgeSymmetry(adj)
	var ie *floor.InconsistentGraphError
	if !errors.As(err, &ie) {
		t.Fatalf("CheckEdgeSymmetry() error = %v, want InconsistentGraphError", err)
	}
	want := []floor.Pair{
		{Vertex: "a", Neighbour: "b"},
		{Vertex: "c", Neighbour: "d"}, // d has no entry at all
	}
	if !reflect.DeepEqual(ie.Pairs, want) {
		t.Errorf("Pairs = %v, want %v", ie.Pairs, want)
	}
}

func TestCheckDistinctPositions(t *testing.T) {
	tests := []struct {
		name    string
		pos     floor.Positions
		wantErr bool
	}{
		{"empty", floor.Positions{}, false},
		{"single", floor.Positions{"a": {X: 1, Y: 1}}, false},
		{"distinct", floor.Positions{"a": {X: 0, Y: 0}, "b": {X: 0, Y: 1}, "c": {X: 1, Y: 0}}, false},
		{"shared", floor.Positions{"a": {X: 0, Y: 0}, "b": {X: 2, Y: 3}, "c": {X: 2, Y: 3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := floor.CheckDistinctPositions(tt.pos)
			var oe *floor.OverlappingNodesError
			if got := errors.As(err, &oe); got != tt.wantErr {
				t.Errorf("CheckDistinctPositions() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckDistinctPositions_NamesGroups(t *testing.T) {
	pos := floor.Positions{
		"e": {X: 5, Y: 5},
		"d": {X: 1, Y: 1},
		"a": {X: 1, Y: 1},
		"c": {X: 9, Y: 0},
		"b": {X: 9, Y: 0},
		"f": {X: 9, Y: 0},
	}

	err := floor.CheckDistinctPositions(pos)
	var oe *floor.OverlappingNodesError
	if !errors.As(err, &oe) {
		t.Fatalf("CheckDistinctPositions() error = %v, want OverlappingNodesError", err)
	}
	want := []floor.Overlap{
		{At: floor.Position{X: 1, Y: 1}, IDs: []floor.ID{"a", "d"}},
		{At: floor.Position{X: 9, Y: 0}, IDs: []floor.ID{"b", "c", "f"}},
	}
	if !reflect.DeepEqual(oe.Groups, want) {
		t.Errorf("Groups = %v, want %v", oe.Groups, want)
	}
	if !strings.Contains(err.Error(), "a, d at (1, 1)") {
		t.Errorf("Error() = %q", err)
	}
}

func TestCheckUniqueIDs(t *testing.T) {
	tests := []struct {
		name  string
		nodes []floor.Node
		want  error
		names string
	}{
		{"none", nil, nil, ""},
		{"distinct", halls("a", "b", "c"), nil, ""},
		{"empty", halls("a", ""), floor.ErrEmptyID, "#2"},
		{"repeated", halls("a", "b", "b", "a"), floor.ErrDuplicateNode, `"b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := floor.CheckUniqueIDs(tt.nodes)
			if tt.want == nil {
				if err != nil {
					t.Errorf("CheckUniqueIDs() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("CheckUniqueIDs() error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.names) {
				t.Errorf("Error() = %q, want it to mention %s", err, tt.names)
			}
		})
	}
}
