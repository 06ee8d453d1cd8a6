package io

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/waypoint"
)

func squareItinerary(t *testing.T) (*floor.Plan, *waypoint.Itinerary) {
	t.Helper()
	b, err := ReadFile(filepath.Join("testdata", "square.toml"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	p := b.Floors[0]
	g, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	it, err := waypoint.Compute(context.Background(), g, p.Start, p.Waypoints)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return p, it
}

func TestNewItinerary(t *testing.T) {
	p, it := squareItinerary(t)
	got := NewItinerary(p.Name, it)

	want := Itinerary{
		Floor:    "square",
		Start:    "a",
		Order:    []string{"c"},
		Route:    []RouteHall{{ID: "a", Name: "Entrance"}, {ID: "b"}, {ID: "c"}},
		Legs:     []RouteLeg{{From: "a", To: "c", Distance: 2, Path: []string{"a", "b", "c"}}},
		Distance: 2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewItinerary() = %+v, want %+v", got, want)
	}
}

func TestWriteItinerary(t *testing.T) {
	p, it := squareItinerary(t)
	one := NewItinerary(p.Name, it)

	var buf bytes.Buffer
	if err := WriteItinerary(&buf, one); err != nil {
		t.Fatalf("WriteItinerary() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("single itinerary should encode as an object, got %q", buf.String()[:1])
	}
	var decoded Itinerary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Distance != 2 || len(decoded.Route) != 3 {
		t.Errorf("decoded = %+v", decoded)
	}

	buf.Reset()
	if err := WriteItinerary(&buf, one, one); err != nil {
		t.Fatalf("WriteItinerary() error = %v", err)
	}
	var many []Itinerary
	if err := json.Unmarshal(buf.Bytes(), &many); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(many) != 2 {
		t.Errorf("len = %d, want 2", len(many))
	}
}

func TestNewItinerary_EmptyOrder(t *testing.T) {
	g, err := floor.Build([]floor.Node{{ID: "solo"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	it, err := waypoint.Compute(context.Background(), g, "solo", nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteItinerary(&buf, NewItinerary("", it)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"order": []`) {
		t.Errorf("empty order should encode as [], got:\n%s", buf.String())
	}
}

func TestExportItinerary(t *testing.T) {
	p, it := squareItinerary(t)
	path := filepath.Join(t.TempDir(), "route.json")

	if err := ExportItinerary(path, NewItinerary(p.Name, it)); err != nil {
		t.Fatalf("ExportItinerary() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"floor": "square"`) {
		t.Errorf("exported file missing floor name:\n%s", data)
	}
}

func TestRoundTrip(t *testing.T) {
	src, err := ReadFile(filepath.Join("testdata", "square.json"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		write  func(*bytes.Buffer) error
		format string
	}{
		{"json", func(b *bytes.Buffer) error { return WriteJSON(b, src) }, FormatJSON},
		{"toml", func(b *bytes.Buffer) error { return WriteTOML(b, src) }, FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(&buf); err != nil {
				t.Fatalf("write error = %v", err)
			}
			got, err := Decode(buf.Bytes(), tt.format, "round."+tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got.Floors[0], src.Floors[0]) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got.Floors[0], src.Floors[0])
			}
		})
	}
}
