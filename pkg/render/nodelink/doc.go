// Package nodelink draws floors as node-link diagrams with Graphviz.
//
// Halls are circles pinned at their floor-plan positions and corridors are
// plain lines. A computed route is overlaid as red arrows numbered in
// walking order, with the start hall and the waypoints filled in colour.
//
//	dot := nodelink.ToDOT(g, it.Route, plan.Positions, nodelink.Options{
//	    Title:     plan.DisplayName(),
//	    Waypoints: plan.Waypoints,
//	})
//	svg, err := nodelink.RenderSVG(dot)
//
// Rendering runs Graphviz in-process through [github.com/goccy/go-graphviz]
// with the neato engine, which honours pinned positions. [Render] also
// produces PNG, or returns the DOT source for external tools.
package nodelink
