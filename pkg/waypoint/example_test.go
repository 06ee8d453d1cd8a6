package waypoint_test

import (
	"fmt"

	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/waypoint"
)

func ExampleRoute() {
	// Corridor 0–1–2–3–4.
	g, _ := floor.Build(
		[]floor.Node{{ID: "0"}, {ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
		floor.Adjacency{
			"0": {"1"},
			"1": {"0", "2"},
			"2": {"1", "3"},
			"3": {"2", "4"},
			"4": {"3"},
		},
	)

	route, err := waypoint.Route(g, "0", []floor.ID{"4", "2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(floor.IDs(route))
	// Output:
	// [0 1 2 3 4]
}
