package io

import (
	"github.com/matzehuels/hallway/pkg/floor"
)

// Hall is the wire form of a hall: identity, label, drawing position and
// the halls one corridor away. X and Y are optional; halls without a
// position are placed freely by the renderer.
type Hall struct {
	ID        string   `json:"id" toml:"id"`
	Name      string   `json:"name,omitempty" toml:"name,omitempty"`
	X         *float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y         *float64 `json:"y,omitempty" toml:"y,omitempty"`
	Neighbors []string `json:"neighbors,omitempty" toml:"neighbors,omitempty"`
}

// Floor is the wire form of a [floor.Plan].
type Floor struct {
	Name      string   `json:"name,omitempty" toml:"name,omitempty"`
	Start     string   `json:"start,omitempty" toml:"start,omitempty"`
	Waypoints []string `json:"waypoints,omitempty" toml:"waypoints,omitempty"`
	Halls     []Hall   `json:"halls" toml:"hall"`
}

// document is the top level of a floor-plan file. A file either describes a
// single floor inline or lists several floors.
type document struct {
	Floor
	Floors []Floor `json:"floors,omitempty" toml:"floor,omitempty"`
}

// ToPlan converts the wire form into a plan. Nothing is validated here:
// when an ID repeats, the later hall's neighbours and position win, and
// [floor.CheckUniqueIDs] (run first by Validate, Build and Check) reports it.
func (f Floor) ToPlan() *floor.Plan {
	p := &floor.Plan{
		Name:      f.Name,
		Halls:     make([]floor.Node, len(f.Halls)),
		Corridors: make(floor.Adjacency, len(f.Halls)),
		Positions: make(floor.Positions, len(f.Halls)),
		Start:     floor.ID(f.Start),
		Waypoints: toIDs(f.Waypoints),
	}
	for i, h := range f.Halls {
		id := floor.ID(h.ID)
		p.Halls[i] = floor.Node{ID: id, Name: h.Name}
		p.Corridors[id] = toIDs(h.Neighbors)
		if h.X != nil && h.Y != nil {
			p.Positions[id] = floor.Position{X: *h.X, Y: *h.Y}
		}
	}
	return p
}

// FromPlan converts a plan into its wire form. Halls keep their order;
// adjacency entries for IDs that are not halls are dropped.
func FromPlan(p *floor.Plan) Floor {
	f := Floor{
		Name:      p.Name,
		Start:     string(p.Start),
		Waypoints: fromIDs(p.Waypoints),
		Halls:     make([]Hall, len(p.Halls)),
	}
	for i, n := range p.Halls {
		h := Hall{ID: string(n.ID), Name: n.Name, Neighbors: fromIDs(p.Corridors[n.ID])}
		if pos, ok := p.Positions[n.ID]; ok {
			x, y := pos.X, pos.Y
			h.X, h.Y = &x, &y
		}
		f.Halls[i] = h
	}
	return f
}

func (d document) building() *floor.Building {
	if len(d.Floors) == 0 {
		return &floor.Building{Name: d.Name, Floors: []*floor.Plan{d.Floor.ToPlan()}}
	}
	b := &floor.Building{Name: d.Name, Floors: make([]*floor.Plan, len(d.Floors))}
	for i, f := range d.Floors {
		b.Floors[i] = f.ToPlan()
	}
	return b
}

func toIDs(ss []string) []floor.ID {
	if ss == nil {
		return nil
	}
	ids := make([]floor.ID, len(ss))
	for i, s := range ss {
		ids[i] = floor.ID(s)
	}
	return ids
}

func fromIDs(ids []floor.ID) []string {
	if ids == nil {
		return nil
	}
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = string(id)
	}
	return ss
}
