// SPDX-License-Identifier: MIT

// Package dijkstra provides a multi-source Dijkstra search for travel networks whose
// edges carry several cost attributes.
//
// Overview:
//
//   - MultiSource computes, from a set of source vertices at once, the minimum cost
//     to every reachable vertex in O((V + E) log V) time.
//   - Distances and paths come out of the same traversal; Result.Dist and Result.Prev
//     always cover the same vertices.
//   - The cost is chosen per call: a named numeric edge attribute (ByAttribute) or a
//     caller-supplied function of the edge endpoints and attributes (ByFunc).
//
// Tie-breaking:
//
//   - When several paths share the minimum cost, the first one discovered is kept:
//     sources are seeded in the order given, neighbors are relaxed in edge insertion
//     order, and heap ties are served first-in first-out. Re-running a search on the
//     same graph therefore always yields the same paths.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil *core.Graph.
//   - ErrNoWeight:          the zero Weight was passed.
//   - ErrBadCutoff:         WithCutoff received a negative or NaN value.
//   - ErrVertexNotFound:    a source vertex does not exist.
//   - ErrMissingAttribute:  a relaxed edge lacks the named numeric attribute.
//   - ErrNegativeWeight:    a relaxed edge has a negative or NaN cost.
//
// API reference:
//
//	func MultiSource(
//	    g *core.Graph,
//	    sources []string,
//	    w Weight,
//	    opts ...Option,
//	) (*Result, error)
//
// Thread safety:
//
//   - MultiSource only reads the graph; concurrent searches over one graph are safe
//     as long as nobody mutates it meanwhile.
package dijkstra
