// Package pkg provides the core libraries for hallway, a floor-plan checker
// and waypoint router.
//
// # Overview
//
// A floor is a set of halls joined by corridors. hallway checks that every
// corridor is listed from both ends and that no two halls are drawn on the
// same spot, then plans a walk from a start hall through a set of waypoints,
// always heading to the nearest waypoint not yet visited.
//
// # Architecture
//
//	TOML / JSON / HCL plan
//	         ↓
//	    [io] package (decode floors and buildings)
//	         ↓
//	    [floor] package (validate + build the graph)
//	         ↓
//	    [shortest] package (single-source shortest paths)
//	         ↓
//	    [waypoint] package (greedy nearest-waypoint itinerary)
//	         ↓
//	    [render/nodelink] package (SVG/PNG/DOT drawing)
//
// [pipeline] runs these steps behind a [cache] and is shared by the CLI and
// the HTTP API so both behave the same.
//
// # Quick Start
//
//	b, _ := io.ReadFile("examples/floors/ground.toml")
//	p := b.Floors[0]
//
//	g, err := p.Build()
//	if err != nil {
//	    // *floor.InconsistentGraphError or *floor.OverlappingNodesError
//	}
//
//	it, _ := waypoint.Compute(ctx, g, p.Start, p.Waypoints)
//	fmt.Println(it.Distance)
//
// # Main Packages
//
// [floor] - Halls, corridors, plan validation and the immutable graph.
//
// [shortest] - Dijkstra over a built graph with path reconstruction.
//
// [waypoint] - Itineraries through waypoints, single or batched per building.
//
// [io] - Plan file formats and itinerary export.
//
// [render/nodelink] - Graphviz drawing with halls pinned at their positions.
//
// [pipeline] - Validate, route and render with caching.
//
// [cache] - File, Redis and no-op caches plus key derivation.
//
// [errors] - Error codes shared by the CLI and the API.
//
// [observability] - Hooks for metrics backends.
//
// [buildinfo] - Version information.
//
// [floor]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/floor
// [shortest]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/shortest
// [waypoint]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/waypoint
// [io]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hallway/pkg/buildinfo
package pkg
