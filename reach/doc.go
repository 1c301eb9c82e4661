// SPDX-License-Identifier: MIT

// Package reach computes dual-threshold Reach Centrality: for each spatial unit, how many
// opportunity targets its access points can reach within an overall cost budget while
// spending no more than a separate budget on street segments.
//
// The two budgets model a two-legged trip: a fast leg (transit, cycling) bounded by the
// overall cost, and a walking leg bounded on its own. A target counts for a unit when
//
//	dist(unit, target) ≤ overall   and   Σ street-edge cost on the recorded path ≤ walk
//
// where dist is the multi-source shortest-path cost from the unit's access points and
// the street sum runs over the edges of that same shortest path whose segment attribute
// equals the street tag.
//
// Usage:
//
//	counts, err := reach.Compute(g, groups, targets, 30, 10,
//	    dijkstra.ByAttribute("time_cost"),
//	    reach.WithWorkers(8),
//	)
//
// Errors:
//
//	ErrInvalidThreshold - a negative (or NaN) overall or walk threshold; checked before any search.
//	ErrMissingAttribute - an edge on a candidate path lacks the street cost or segment attribute.
//	Errors from dijkstra (missing source vertex, negative weight) are passed through wrapped.
//
// Each group runs its own search; groups share nothing but the read-only graph, so
// WithWorkers spreads them across goroutines and the result order still follows the input.
package reach
