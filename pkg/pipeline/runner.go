package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hallway/pkg/cache"
	"github.com/matzehuels/hallway/pkg/errors"
	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/io"
	"github.com/matzehuels/hallway/pkg/observability"
	"github.com/matzehuels/hallway/pkg/render/nodelink"
	"github.com/matzehuels/hallway/pkg/waypoint"
)

// Runner executes pipelines against a cache. It keeps no per-run state and
// may be shared between goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Route validates and builds p and computes its itinerary.
func (r *Runner) Route(ctx context.Context, p *floor.Plan, opts Options) (*Result, error) {
	if err := opts.validate(false); err != nil {
		return nil, err
	}
	res, err := r.route(ctx, p, opts)
	if err != nil {
		return nil, errors.Classify(err)
	}
	return res, nil
}

// Render computes the itinerary of p and draws it in opts.Format.
func (r *Runner) Render(ctx context.Context, p *floor.Plan, opts Options) (*Result, error) {
	if err := opts.validate(true); err != nil {
		return nil, err
	}
	res, err := r.route(ctx, p, opts)
	if err != nil {
		return nil, errors.Classify(err)
	}
	if err := r.render(ctx, res, opts); err != nil {
		return nil, errors.Classify(err)
	}
	return res, nil
}

// RouteBuilding routes every floor of b concurrently, each from its own
// start hall through its own waypoints. Results are uncached and in floor
// order.
func (r *Runner) RouteBuilding(ctx context.Context, b *floor.Building) ([]*Result, error) {
	results := make([]*Result, len(b.Floors))
	jobs := make([]waypoint.Job, len(b.Floors))
	for i, p := range b.Floors {
		g, err := p.Build()
		if err != nil {
			return nil, errors.Classify(fmt.Errorf("%s: %w", p.DisplayName(), err))
		}
		start, visit, err := Options{}.resolve(p)
		if err != nil {
			return nil, err
		}
		jobs[i] = waypoint.Job{Name: p.DisplayName(), Graph: g, Start: start, Visit: visit}
		results[i] = &Result{Plan: p, Graph: g, Stats: graphStats(g)}
	}

	began := time.Now()
	its, err := waypoint.Batch(ctx, jobs)
	if err != nil {
		return nil, errors.Classify(err)
	}
	for i, it := range its {
		results[i].Itinerary = io.NewItinerary(b.Floors[i].Name, it)
		results[i].Stats.RouteTime = time.Since(began)
	}
	r.Logger.Info("routed building", "floors", len(results), "duration", time.Since(began).Round(time.Millisecond))
	return results, nil
}

func (r *Runner) route(ctx context.Context, p *floor.Plan, opts Options) (*Result, error) {
	g, err := p.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.DisplayName(), err)
	}
	hash, err := cache.HashJSON(io.FromPlan(p))
	if err != nil {
		return nil, err
	}
	start, visit, err := opts.resolve(p)
	if err != nil {
		return nil, err
	}

	res := &Result{Plan: p, Graph: g, PlanHash: hash, Stats: graphStats(g)}
	key := r.Keyer.RouteKey(hash, routeKeyOpts(p, start, visit))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err != nil {
			r.Logger.Warn("route cache read failed", "err", err)
		} else if hit {
			if err := json.NewDecoder(bytes.NewReader(data)).Decode(&res.Itinerary); err == nil {
				res.CacheInfo.RouteHit = true
				observability.Cache().OnCacheHit(ctx, "route")
				r.Logger.Debug("route cache hit", "floor", p.DisplayName())
				return res, nil
			}
			r.Logger.Debug("discarding unreadable cached route", "key", key)
		}
		observability.Cache().OnCacheMiss(ctx, "route")
	}

	hooks := observability.Pipeline()
	hooks.OnRouteStart(ctx, p.DisplayName(), len(visit))
	began := time.Now()
	routeCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	it, err := waypoint.Compute(routeCtx, g, start, visit)
	res.Stats.RouteTime = time.Since(began)
	if err != nil {
		hooks.OnRouteComplete(ctx, p.DisplayName(), 0, res.Stats.RouteTime, err)
		return nil, err
	}
	hooks.OnRouteComplete(ctx, p.DisplayName(), it.Distance, res.Stats.RouteTime, nil)
	res.Itinerary = io.NewItinerary(p.Name, it)

	var buf bytes.Buffer
	if err := io.WriteItinerary(&buf, res.Itinerary); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.RouteTTL); err != nil {
			r.Logger.Warn("route cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "route", buf.Len())
		}
	}

	r.Logger.Debug("computed route",
		"floor", p.DisplayName(),
		"waypoints", len(visit),
		"distance", it.Distance,
		"duration", res.Stats.RouteTime)
	return res, nil
}

func (r *Runner) render(ctx context.Context, res *Result, opts Options) error {
	start, visit, err := opts.resolve(res.Plan)
	if err != nil {
		return err
	}
	key := r.Keyer.ArtifactKey(res.PlanHash, cache.ArtifactKeyOpts{
		RouteKeyOpts: routeKeyOpts(res.Plan, start, visit),
		Format:       opts.Format,
		Detailed:     opts.Detailed,
		Scale:        opts.Scale,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err != nil {
			r.Logger.Warn("artifact cache read failed", "err", err)
		} else if hit {
			res.Artifact = data
			res.CacheInfo.RenderHit = true
			observability.Cache().OnCacheHit(ctx, "artifact")
			return nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	route := make([]floor.Node, 0, len(res.Itinerary.Route))
	for _, h := range res.Itinerary.Route {
		n, ok := res.Graph.Node(floor.ID(h.ID))
		if !ok {
			return errors.New(errors.ErrCodeInternal, "route hall %s is not on floor %s", h.ID, res.Plan.DisplayName())
		}
		route = append(route, n)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, res.Plan.DisplayName(), opts.Format)
	began := time.Now()
	dot := nodelink.ToDOT(res.Graph, route, res.Plan.Positions, nodelink.Options{
		Title:     res.Plan.DisplayName(),
		Detailed:  opts.Detailed,
		Waypoints: visit,
		Scale:     opts.Scale,
	})
	data, err := nodelink.Render(ctx, dot, opts.Format)
	hooks.OnRenderComplete(ctx, res.Plan.DisplayName(), opts.Format, len(data), time.Since(began), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", res.Plan.DisplayName())
	}
	res.Artifact = data
	res.Stats.RenderTime = time.Since(began)

	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		r.Logger.Warn("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	r.Logger.Debug("rendered floor", "floor", res.Plan.DisplayName(), "format", opts.Format, "bytes", len(data))
	return nil
}

func routeKeyOpts(p *floor.Plan, start floor.ID, visit []floor.ID) cache.RouteKeyOpts {
	opts := cache.RouteKeyOpts{Floor: p.Name, Start: string(start), Visit: make([]string, len(visit))}
	for i, id := range visit {
		opts.Visit[i] = string(id)
	}
	return opts
}

func graphStats(g *floor.Graph) Stats {
	return Stats{HallCount: g.NodeCount(), CorridorCount: g.EdgeCount() / 2}
}
