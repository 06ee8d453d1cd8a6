package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hallway/pkg/errors"
	hio "github.com/matzehuels/hallway/pkg/io"
	"github.com/matzehuels/hallway/pkg/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// routeOpts holds the flags shared by route, render and pick.
type routeOpts struct {
	floor   string        // floor to use in building files
	start   string        // overrides the plan's start hall
	visit   []string      // overrides the plan's waypoints
	noCache bool          // disable the file cache
	refresh bool          // ignore cached results
	timeout time.Duration // bound on one route computation
}

func (o *routeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.floor, "floor", "", "floor to use when the file describes a building")
	cmd.Flags().StringVar(&o.start, "start", "", "start hall (default: the plan's start)")
	cmd.Flags().StringSliceVar(&o.visit, "visit", nil, "waypoints to visit, comma-separated (default: the plan's waypoints)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().DurationVar(&o.timeout, "timeout", pipeline.DefaultTimeout, "give up routing after this long")
}

// pipelineOptions converts the flags. An explicitly empty --visit means no
// waypoints rather than the plan's.
func (o *routeOpts) pipelineOptions(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Start:   o.start,
		Refresh: o.refresh,
		Timeout: o.timeout,
	}
	if cmd.Flags().Changed("visit") {
		opts.Visit = o.visit
		if opts.Visit == nil {
			opts.Visit = []string{}
		}
	}
	return opts
}

func (o *routeOpts) overridesPlan(cmd *cobra.Command) bool {
	return o.start != "" || cmd.Flags().Changed("visit")
}

func (c *CLI) routeCommand() *cobra.Command {
	var (
		opts   routeOpts
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "route FILE",
		Short: "Plan a walk from the start hall through every waypoint",
		Long: `Plan a walk from the start hall through every waypoint, always heading to
the nearest waypoint not yet visited (ties go to the hall listed first).

Without --floor, every floor of a building file is routed from its own
start hall through its own waypoints.`,
		Example: `  hallway route examples/floors/ground.toml
  hallway route ground.toml --start 0 --visit 18,17,24 --format json
  hallway route annex.toml -o routes.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want text or json)", format)
			}
			return c.runRoute(cmd, args[0], &opts, format, output)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "stdout format: text or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the itinerary JSON to this file")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, path string, opts *routeOpts, format, output string) error {
	ctx := cmd.Context()
	b, plans, err := loadFloors(path, opts.floor)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	var results []*pipeline.Result
	switch {
	case len(plans) == 1:
		res, err := runner.Route(ctx, plans[0], opts.pipelineOptions(cmd))
		if err != nil {
			return err
		}
		results = []*pipeline.Result{res}
	case opts.overridesPlan(cmd):
		return errMultipleFloors(path, b)
	default:
		results, err = runner.RouteBuilding(ctx, b)
		if err != nil {
			return err
		}
	}

	return writeItineraries(ctx, results, format, output)
}

func writeItineraries(ctx context.Context, results []*pipeline.Result, format, output string) error {
	its := make([]hio.Itinerary, len(results))
	for i, res := range results {
		its[i] = res.Itinerary
	}

	if output != "" {
		if err := hio.ExportItinerary(output, its...); err != nil {
			return err
		}
		loggerFromContext(ctx).Debug("wrote itinerary", "file", output, "floors", len(its))
	}

	if format == formatJSON {
		if output != "" {
			return nil
		}
		return hio.WriteItinerary(os.Stdout, its...)
	}

	for i, res := range results {
		if i > 0 {
			printNewline()
		}
		printItinerary(res.Itinerary)
		printStats(res.Stats.HallCount, res.Stats.CorridorCount, res.CacheInfo.RouteHit)
	}
	if output != "" {
		printNewline()
		printSuccess("Saved itinerary")
		printFile(output)
	}
	return nil
}
