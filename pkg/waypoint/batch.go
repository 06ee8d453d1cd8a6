package waypoint

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/hallway/pkg/floor"
)

// Job is one routing request for [Batch].
type Job struct {
	Name  string // used in error messages, typically the floor name
	Graph *floor.Graph
	Start floor.ID
	Visit []floor.ID
}

// Batch computes the itineraries of all jobs concurrently. Results are in
// job order. The first failing job cancels the rest and its error is
// returned, prefixed with the job name.
func Batch(ctx context.Context, jobs []Job) ([]*Itinerary, error) {
	results := make([]*Itinerary, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		eg.Go(func() error {
			it, err := Compute(ctx, job.Graph, job.Start, job.Visit)
			if err != nil {
				if job.Name != "" {
					return fmt.Errorf("%s: %w", job.Name, err)
				}
				return err
			}
			results[i] = it
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
