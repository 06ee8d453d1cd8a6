package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hallway/pkg/errors"
)

func (c *CLI) validateCommand() *cobra.Command {
	var floorName string

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check floor plans for one-way corridors and overlapping halls",
		Long: `Check every floor of the given plan files. All checks run on every floor,
so one pass reports all defects: corridors listed on one side only, halls
sharing a position, references to halls that do not exist.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args, floorName)
		},
	}
	cmd.Flags().StringVar(&floorName, "floor", "", "only check the named floor")

	return cmd
}

func runValidate(ctx context.Context, paths []string, floorName string) error {
	logger := loggerFromContext(ctx)
	failed := 0

	for _, path := range paths {
		_, plans, err := loadFloors(path, floorName)
		if err != nil {
			printError("%v", err)
			failed++
			continue
		}
		logger.Debug("checking plan", "file", path, "floors", len(plans))

		for _, p := range plans {
			errs := p.Check()
			if len(errs) == 0 {
				printSuccess("%s: %s is valid", path, p.DisplayName())
				printDetail("%d halls, %d waypoints", len(p.Halls), len(p.Waypoints))
				continue
			}
			failed++
			printError("%s: %s has %d defect(s)", path, p.DisplayName(), len(errs))
			for _, e := range errs {
				printDetail("%s", errors.UserMessage(errors.Classify(e)))
			}
		}
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "%d floor plan(s) failed validation", failed)
	}
	return nil
}
