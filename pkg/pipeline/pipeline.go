// Package pipeline runs the load → route → render steps shared by the CLI
// and the HTTP API, with caching.
//
// A [Runner] builds the floor graph, computes the itinerary (cached by plan
// content, start and waypoints) and optionally draws it (cached by the same
// inputs plus the output format):
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Render(ctx, plan, pipeline.Options{Format: pipeline.FormatSVG})
//	os.WriteFile("ground.svg", res.Artifact, 0o644)
//
// Errors returned by a Runner carry a code from package errors.
package pipeline

import (
	"time"

	"github.com/matzehuels/hallway/pkg/errors"
	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/io"
	"github.com/matzehuels/hallway/pkg/render/nodelink"
)

// Output formats for rendered diagrams.
const (
	FormatSVG = nodelink.FormatSVG
	FormatPNG = nodelink.FormatPNG
	FormatDOT = nodelink.FormatDOT
)

// DefaultTimeout bounds a single route computation.
const DefaultTimeout = 30 * time.Second

// ValidFormats is the set of supported diagram formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatDOT: true,
}

// ValidateFormat checks a diagram format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg, png or dot)", format)
	}
	return nil
}

// Options selects what to route and how to draw it. Start and Visit
// default to the plan's own start hall and waypoints.
type Options struct {
	Start string   `json:"start,omitempty"`
	Visit []string `json:"visit,omitempty"`

	Format   string  `json:"format,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
	Scale    float64 `json:"scale,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool          `json:"-"`
	Timeout time.Duration `json:"-"`
}

// validate checks ids and format and fills defaults.
func (o *Options) validate(render bool) error {
	if o.Start != "" {
		if err := errors.ValidateHallID(o.Start); err != nil {
			return err
		}
	}
	if err := errors.ValidateWaypoints(o.Visit); err != nil {
		return err
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if !render {
		return nil
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	return ValidateFormat(o.Format)
}

// resolve returns the start hall and waypoints for p.
func (o Options) resolve(p *floor.Plan) (floor.ID, []floor.ID, error) {
	start := p.Start
	if o.Start != "" {
		start = floor.ID(o.Start)
	}
	if start == "" {
		return "", nil, errors.New(errors.ErrCodeInvalidInput, "%s: no start hall given", p.DisplayName())
	}
	visit := p.Waypoints
	if o.Visit != nil {
		visit = make([]floor.ID, len(o.Visit))
		for i, id := range o.Visit {
			visit[i] = floor.ID(id)
		}
	}
	return start, visit, nil
}

// Result is the outcome of a pipeline run.
type Result struct {
	Plan      *floor.Plan
	Graph     *floor.Graph
	PlanHash  string
	Itinerary io.Itinerary

	// Artifact is the rendered diagram; empty for route-only runs.
	Artifact []byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds sizes and timings.
type Stats struct {
	HallCount     int
	CorridorCount int
	RouteTime     time.Duration
	RenderTime    time.Duration
}

// CacheInfo records which steps were served from the cache.
type CacheInfo struct {
	RouteHit  bool
	RenderHit bool
}
