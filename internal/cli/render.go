package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hallway/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	routeOpts
	output   string  // output file; defaults to <floor>.<format> next to FILE
	format   string  // svg, png or dot
	detailed bool    // show hall names under the ids
	scale    float64 // inches per position unit
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: pipeline.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a floor with its route highlighted",
		Long: `Draw a floor with halls at their plan positions and the planned route
overlaid as numbered red arrows. The start hall and the waypoints are filled
in colour.`,
		Example: `  hallway render examples/floors/ground.toml
  hallway render ground.toml --visit 5,21 --format png -o ground.png
  hallway render annex.toml --floor first --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <floor>.<format> next to FILE)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png or dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label halls with their names")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "inches per position unit (default 1.5)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	p, err := loadFloor(path, opts.floor)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	popts := opts.pipelineOptions(cmd)
	popts.Format = opts.format
	popts.Detailed = opts.detailed
	popts.Scale = opts.scale

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", p.DisplayName()))
	spinner.Start()
	res, err := runner.Render(ctx, p, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("rendered floor", "floor", p.DisplayName(), "format", opts.format)

	out := opts.output
	if out == "" {
		out = defaultOutputPath(path, p.DisplayName(), opts.format)
	}
	if err := os.WriteFile(out, res.Artifact, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered %s (route distance %d)", p.DisplayName(), res.Itinerary.Distance)
	printStats(res.Stats.HallCount, res.Stats.CorridorCount, res.CacheInfo.RenderHit)
	printFile(out)
	return nil
}

// defaultOutputPath places <floor>.<format> next to the plan file, using
// the plan file's base name for single-floor files named after it.
func defaultOutputPath(planPath, floorName, format string) string {
	dir := filepath.Dir(planPath)
	base := strings.TrimSuffix(filepath.Base(planPath), filepath.Ext(planPath))
	if floorName != "" && floorName != base && floorName != "floor" {
		base = base + "-" + floorName
	}
	return filepath.Join(dir, base+"."+format)
}
