// SPDX-License-Identifier: MIT
package reach_test

import (
	"fmt"

	"github.com/katalvlaran/spatialjustice/core"
	"github.com/katalvlaran/spatialjustice/dijkstra"
	"github.com/katalvlaran/spatialjustice/reach"
)

// ExampleCompute counts a library and a clinic from two neighbourhoods. The east
// neighbourhood rides a tram for most of the way, so its walking leg stays short.
func ExampleCompute() {
	g := core.NewGraph()
	edge := func(a, b, kind string, minutes float64) {
		_, _ = g.AddEdge(a, b, core.WithEdgeAttrs(map[string]interface{}{
			"time_cost":    minutes,
			"segment_type": kind,
		}))
	}
	edge("west", "library", "street", 12)
	edge("east", "tram_stop", "street", 3)
	edge("tram_stop", "clinic_stop", "tram", 10)
	edge("clinic_stop", "clinic", "street", 2)

	groups := [][]string{{"west"}, {"east"}}
	targets := []string{"library", "clinic"}

	counts, err := reach.Compute(g, groups, targets, 20, 10, dijkstra.ByAttribute("time_cost"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(counts)
	// Output: [0 1]
}
