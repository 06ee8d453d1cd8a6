package floor

import (
	"fmt"
	"slices"
)

// Plan describes one floor: its halls, the corridors joining them and where
// each hall is drawn. Start and Waypoints are optional defaults for routing.
//
// A Plan is plain configuration. Nothing is checked until [Plan.Validate] or
// [Plan.Build] runs.
type Plan struct {
	Name      string
	Halls     []Node
	Corridors Adjacency
	Positions Positions
	Start     ID
	Waypoints []ID
}

// Validate runs the integrity checks in order: unique hall IDs, corridor
// symmetry, then distinct positions. The first failing check's error is
// returned.
func (p *Plan) Validate() error {
	if err := CheckUniqueIDs(p.Halls); err != nil {
		return err
	}
	if err := CheckEdgeSymmetry(p.Corridors); err != nil {
		return err
	}
	return CheckDistinctPositions(p.Positions)
}

// Build validates the plan and builds its graph. No graph is returned when
// validation fails.
func (p *Plan) Build() (*Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return Build(p.Halls, p.Corridors)
}

// Check runs every check and returns all failures instead of stopping at
// the first: corridor symmetry, distinct positions, then graph construction
// and the start and waypoint references.
//
// A bad hall ID is reported alone. Corridors and positions are keyed by ID,
// so with a repeated ID the later hall's entries replaced the earlier ones
// and any further finding would describe the merged data.
func (p *Plan) Check() []error {
	if err := CheckUniqueIDs(p.Halls); err != nil {
		return []error{err}
	}
	var errs []error
	if err := CheckEdgeSymmetry(p.Corridors); err != nil {
		errs = append(errs, err)
	}
	if err := CheckDistinctPositions(p.Positions); err != nil {
		errs = append(errs, err)
	}
	g, err := Build(p.Halls, p.Corridors)
	if err != nil {
		return append(errs, err)
	}

	var unknown []ID
	if p.Start != "" {
		if _, ok := g.Index(p.Start); !ok {
			unknown = append(unknown, p.Start)
		}
	}
	for _, id := range p.Waypoints {
		if _, ok := g.Index(id); !ok && !slices.Contains(unknown, id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		errs = append(errs, &UnknownNodeError{IDs: unknown})
	}
	return errs
}

// DisplayName returns the plan name, or "floor" when unnamed.
func (p *Plan) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return "floor"
}

// Building is an ordered set of floors. Each floor is an independent plan;
// there are no corridors between floors.
type Building struct {
	Name   string
	Floors []*Plan
}

// Floor returns the floor with the given name.
func (b *Building) Floor(name string) (*Plan, error) {
	for _, f := range b.Floors {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFloor, name)
}
