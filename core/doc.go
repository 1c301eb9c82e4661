// SPDX-License-Identifier: MIT

// Package core is the network model shared by the shortest-path and reach packages.
//
// A Graph holds vertices (intersections, stops, access points) and edges that carry
// an attribute map. A typical multimodal network tags each edge with a travel cost
// and a segment type:
//
//	g := core.NewGraph()
//	g.AddEdge("home", "corner", core.WithEdgeAttrs(map[string]interface{}{
//	    "time_cost":    4.5,
//	    "segment_type": "street",
//	}))
//
// Ordering guarantees:
//
//	Vertices()    - lexicographic ascending.
//	Edges()       - insertion order.
//	Neighbors(id) - insertion order.
//
// Thread safety: mutate while building, then share the graph read-only across
// goroutines; every query takes read locks only.
package core
