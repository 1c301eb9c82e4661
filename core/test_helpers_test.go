// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for spatialjustice/core.

package core_test

import (
	"github.com/katalvlaran/spatialjustice/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common attribute keys used across core tests.
const (
	AttrCost    = "time_cost"
	AttrSegment = "segment_type"
	SegStreet   = "street"
	SegTransit  = "transit"
)

// streetEdge returns edge options for a street segment with the given cost.
func streetEdge(cost float64) core.EdgeOption {
	return core.WithEdgeAttrs(map[string]interface{}{AttrCost: cost, AttrSegment: SegStreet})
}

// edgeIDs extracts Edge.ID values preserving order.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.ID)
	}

	return out
}
