package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/waypoint"
)

// RouteHall is a hall as it appears in an exported route.
type RouteHall struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// RouteLeg is one exported leg.
type RouteLeg struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Distance int64    `json:"distance"`
	Path     []string `json:"path"`
}

// Itinerary is the JSON form of a [waypoint.Itinerary].
type Itinerary struct {
	Floor    string      `json:"floor,omitempty"`
	Start    string      `json:"start"`
	Order    []string    `json:"order"`
	Route    []RouteHall `json:"route"`
	Legs     []RouteLeg  `json:"legs"`
	Distance int64       `json:"distance"`
}

// NewItinerary converts a computed itinerary to its JSON form.
func NewItinerary(floorName string, it *waypoint.Itinerary) Itinerary {
	out := Itinerary{
		Floor:    floorName,
		Start:    string(it.Start.ID),
		Order:    fromIDs(floor.IDs(it.Order)),
		Route:    make([]RouteHall, len(it.Route)),
		Legs:     make([]RouteLeg, len(it.Legs)),
		Distance: it.Distance,
	}
	if out.Order == nil {
		out.Order = []string{}
	}
	for i, n := range it.Route {
		out.Route[i] = RouteHall{ID: string(n.ID), Name: n.Name}
	}
	for i, l := range it.Legs {
		out.Legs[i] = RouteLeg{
			From:     string(l.From.ID),
			To:       string(l.To.ID),
			Distance: l.Distance,
			Path:     fromIDs(floor.IDs(l.Path)),
		}
	}
	return out
}

// WriteItinerary encodes one or more itineraries as indented JSON. A single
// itinerary is written as an object, several as an array.
func WriteItinerary(w io.Writer, its ...Itinerary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	var v any = its
	if len(its) == 1 {
		v = its[0]
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportItinerary writes itineraries to a JSON file at path.
func ExportItinerary(path string, its ...Itinerary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteItinerary(f, its...)
}

// WriteJSON encodes a building as a JSON floor-plan document.
func WriteJSON(w io.Writer, b *floor.Building) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes a building as a TOML floor-plan document.
func WriteTOML(w io.Writer, b *floor.Building) error {
	if err := toml.NewEncoder(w).Encode(toDocument(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func toDocument(b *floor.Building) document {
	if len(b.Floors) == 1 {
		f := FromPlan(b.Floors[0])
		if f.Name == "" {
			f.Name = b.Name
		}
		return document{Floor: f}
	}
	doc := document{Floor: Floor{Name: b.Name}}
	for _, p := range b.Floors {
		doc.Floors = append(doc.Floors, FromPlan(p))
	}
	return doc
}
