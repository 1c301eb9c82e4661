// Package spatialjustice measures how fairly a city distributes access to
// opportunities (schools, jobs, clinics) across its neighbourhoods.
//
// 🚀 What is spatialjustice?
//
//	A thread-safe toolkit that brings together:
//		• Network model: vertices & edges carrying arbitrary attributes
//		• Shortest paths: multi-source Dijkstra with deterministic tie-breaking
//		• Reach Centrality: targets reachable within an overall and a street-only budget
//		• Distributive justice: Equality, Utility and Rawls baselines with compliance summaries
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     - Graph, Vertex, Edge and attribute maps; thread-safe primitives
//	dijkstra/ - multi-source shortest paths over a named attribute or cost function
//	reach/    - the dual-threshold Reach Centrality engine
//	table/    - row-per-unit columnar table with min-max normalisation
//	justice/  - Equality, Utility, Rawls schemes and the vulnerability score
//
// The spatialjustice command (cmd/spatialjustice) wires these together with CSV, XLSX
// and shapefile inputs.
//
// Quick example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("S", "A", core.WithEdgeAttrs(map[string]interface{}{"cost": 5, "segment_type": "street"}))
//	_, _ = g.AddEdge("A", "T", core.WithEdgeAttrs(map[string]interface{}{"cost": 5, "segment_type": "street"}))
//	counts, _ := reach.Compute(g, [][]string{{"S"}}, []string{"T"}, 100, 11, dijkstra.ByAttribute("cost"))
//	// counts == []int{1}
//
// See the examples/ directory for a complete neighbourhood walkthrough.
package spatialjustice
