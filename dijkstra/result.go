// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/spatialjustice/core"

// Result is the outcome of one MultiSource search.
//
// Dist, Prev and PrevEdge always share the same key set: the settled vertices.
// Sources map to Prev "" and PrevEdge nil.
type Result struct {
	// Sources are the distinct source vertices in the order they were given.
	Sources []string

	// Dist maps each settled vertex to its minimum cost from the nearest source.
	Dist map[string]float64

	// Prev maps each settled vertex to its predecessor on the recorded shortest path.
	Prev map[string]string

	// PrevEdge maps each settled vertex to the edge used to enter it.
	PrevEdge map[string]*core.Edge
}

func newResult(sources []string) *Result {
	uniq := make([]string, 0, len(sources))
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}

	return &Result{
		Sources:  uniq,
		Dist:     make(map[string]float64),
		Prev:     make(map[string]string),
		PrevEdge: make(map[string]*core.Edge),
	}
}

// settle records the final distance and entering edge of v in one step.
func (r *Result) settle(v string, d float64, via *core.Edge) {
	r.Dist[v] = d
	r.PrevEdge[v] = via
	if via == nil {
		r.Prev[v] = ""
		return
	}
	r.Prev[v] = via.Other(v)
}

// Reached reports whether v was settled by the search.
func (r *Result) Reached(v string) bool {
	_, ok := r.Dist[v]

	return ok
}

// Path returns the recorded shortest path from its source to v, inclusive.
// It returns nil when v was not reached.
//
// Complexity: O(path length).
func (r *Result) Path(v string) []string {
	if !r.Reached(v) {
		return nil
	}
	var rev []string
	for cur := v; ; {
		rev = append(rev, cur)
		e := r.PrevEdge[cur]
		if e == nil {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// PathEdges returns the edges of the recorded shortest path to v, in travel order.
// It returns nil when v was not reached or v is a source.
func (r *Result) PathEdges(v string) []*core.Edge {
	if !r.Reached(v) {
		return nil
	}
	var rev []*core.Edge
	for cur := v; r.PrevEdge[cur] != nil; cur = r.Prev[cur] {
		rev = append(rev, r.PrevEdge[cur])
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
