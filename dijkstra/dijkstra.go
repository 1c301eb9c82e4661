// SPDX-License-Identifier: MIT

// Package dijkstra implements a multi-source Dijkstra search on attribute-weighted networks.
//
// Notes on implementation choices:
//
//   - All sources start at distance zero and are pushed in the order given.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by push order, and a predecessor is replaced only on a strictly
//     shorter distance, so among equal-cost paths the first one discovered wins.
//   - Neighbors are relaxed in edge insertion order (core.Graph.Neighbors).
//   - Edge costs are validated when an edge is relaxed, not in a pre-scan: only edges the
//     search actually touches need a cost.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/spatialjustice/core"
)

// MultiSource computes shortest distances and paths from the nearest of sources
// to every vertex reachable within the cutoff.
//
// Returns:
//
//   - *Result: distances, predecessors and predecessor edges of every settled vertex.
//     An empty sources slice yields an empty Result and no error.
//   - err: a sentinel-wrapped error if inputs are invalid or a relaxed edge has a bad cost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. w must select an attribute or function (ErrNoWeight).
//  3. cutoff must be ≥ 0 (ErrBadCutoff).
//  4. every source must exist in g (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func MultiSource(g *core.Graph, sources []string, w Weight, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	cost, err := w.resolve()
	if err != nil {
		return nil, err
	}
	if math.IsNaN(cfg.Cutoff) || cfg.Cutoff < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadCutoff, cfg.Cutoff)
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, s)
		}
	}

	r := &runner{
		g:        g,
		cost:     cost,
		cutoff:   cfg.Cutoff,
		res:      newResult(sources),
		seen:     make(map[string]float64),
		tentPrev: make(map[string]*core.Edge),
	}
	r.init(sources)
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g      *core.Graph
	cost   edgeCost
	cutoff float64
	res    *Result

	seen     map[string]float64    // best tentative distance pushed so far
	tentPrev map[string]*core.Edge // edge that produced seen[v]; nil for sources
	pq       nodePQ
	seq      uint64 // heap push counter for FIFO tie-breaking
}

// init marks every source at distance zero and pushes it onto the heap.
func (r *runner) init(sources []string) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, ok := r.seen[s]; ok {
			continue
		}
		r.seen[s] = 0
		r.tentPrev[s] = nil
		r.push(s, 0)
	}
}

// process pops vertices in order of distance, settles them and relaxes their edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.res.Reached(u) {
			continue // stale entry
		}
		r.res.settle(u, item.dist, r.tentPrev[u])

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and records strictly shorter tentative distances.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	var e *core.Edge
	for _, e = range neighbors {
		v := e.Other(u)

		w, err := r.cost(e, u)
		if err != nil {
			return err
		}
		if math.IsInf(w, 1) {
			continue // impassable
		}
		if math.IsNaN(w) || w < 0 {
			return fmt.Errorf("%w: edge %s %s→%s weight=%v", ErrNegativeWeight, e.ID, u, v, w)
		}

		nd := du + w
		if nd > r.cutoff {
			continue
		}
		if r.res.Reached(v) {
			continue
		}
		if best, ok := r.seen[v]; ok && nd >= best {
			continue // equal-cost alternatives never replace the first path found
		}
		r.seen[v] = nd
		r.tentPrev[v] = e
		r.push(v, nd)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// nodeItem represents a vertex and its tentative distance from the nearest source.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
