// Package io reads floor plans from JSON, TOML and HCL files and writes
// computed itineraries as JSON.
//
// # Floor-plan files
//
// A floor-plan file describes either one floor inline or a building with
// several floors. The format is picked from the file extension by
// [ReadFile]. In TOML a single floor looks like:
//
//	name      = "ground"
//	start     = "0"
//	waypoints = ["18", "17", "24"]
//
//	[[hall]]
//	id        = "0"
//	x         = 0.0
//	y         = 0.0
//	neighbors = ["23"]
//
// A building wraps the same tables in [[floor]] entries, with halls as
// [[floor.hall]]. JSON uses "halls" and "floors" arrays; HCL uses hall and
// floor blocks labelled by ID and name.
//
// Loaders only decode. The resulting [floor.Plan] values are checked by
// [floor.Plan.Validate] before a graph is built.
//
// # Itineraries
//
// [NewItinerary] converts a [waypoint.Itinerary] into the exported shape:
//
//	{
//	  "floor": "ground",
//	  "start": "0",
//	  "order": ["24", "18", "17"],
//	  "route": [{"id": "0"}, {"id": "23"}, ...],
//	  "legs": [{"from": "0", "to": "24", "distance": 2, "path": ["0", "23", "24"]}, ...],
//	  "distance": 9
//	}
package io
