package nodelink

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/hallway/pkg/floor"
)

// DefaultScale is the number of inches per position unit.
const DefaultScale = 1.5

// Options configures floor diagrams.
type Options struct {
	// Title is drawn above the diagram when set.
	Title string

	// Detailed adds the hall name below its ID.
	Detailed bool

	// Waypoints are filled in a highlight colour. The first route node is
	// always marked as the start.
	Waypoints []floor.ID

	// Scale is inches per position unit. Zero uses DefaultScale.
	Scale float64
}

// Colours used by the diagram.
const (
	routeColor    = "#d62728"
	corridorColor = "#555555"
	startFill     = "#b5e3b5"
	waypointFill  = "#ffe08a"
)

// ToDOT draws a floor as Graphviz DOT for the neato engine. Halls with a
// position are pinned there; others are placed by neato. Each corridor is
// drawn once. Corridors walked by route are replaced by one red arrow per
// traversal, pointing in walking direction and labelled with the step
// number, so a corridor walked twice shows two arrows.
func ToDOT(g *floor.Graph, route []floor.Node, positions floor.Positions, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	walked := make(map[[2]floor.ID]bool)
	for i := 1; i < len(route); i++ {
		walked[corridorKey(route[i-1].ID, route[i].ID)] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=28;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18, width=0.8, fixedsize=false];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=1.5];\n", corridorColor)
	buf.WriteString("\n")

	var start floor.ID
	if len(route) > 0 {
		start = route[0].ID
	}
	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
		if p, ok := positions[n.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("pos=%q", fmtPos(p, scale)))
		}
		switch {
		case n.ID == start:
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", startFill), "penwidth=2")
		case slices.Contains(opts.Waypoints, n.ID):
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", waypointFill))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	drawn := make(map[[2]floor.ID]bool)
	for _, e := range g.Edges() {
		k := corridorKey(e.From, e.To)
		if drawn[k] {
			continue
		}
		drawn[k] = true
		if walked[k] {
			continue
		}
		if g.HasEdge(e.To, e.From) {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q [dir=forward];\n", e.From, e.To)
		}
	}

	if len(route) > 1 {
		buf.WriteString("\n")
	}
	for i := 1; i < len(route); i++ {
		fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=3, dir=forward, label=\"%d\", fontcolor=%q];\n",
			route[i-1].ID, route[i].ID, routeColor, i, routeColor)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// corridorKey identifies a corridor regardless of direction.
func corridorKey(a, b floor.ID) [2]floor.ID {
	if b < a {
		a, b = b, a
	}
	return [2]floor.ID{a, b}
}

func fmtLabel(n floor.Node, detailed bool) string {
	if !detailed || n.Name == "" {
		return string(n.ID)
	}
	return string(n.ID) + "\n" + n.Name
}

// fmtPos returns a pinned neato position in inches.
func fmtPos(p floor.Position, scale float64) string {
	x := strconv.FormatFloat(p.X*scale, 'f', -1, 64)
	y := strconv.FormatFloat(p.Y*scale, 'f', -1, 64)
	return x + "," + y + "!"
}
