// SPDX-License-Identifier: MIT

package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spatialjustice/core"
	"github.com/katalvlaran/spatialjustice/dijkstra"
)

// streetTree prices the street-only cost of recorded shortest paths.
//
// Every recorded path is a branch of the search's shortest-path tree, so the street
// cost of v is the street cost of its predecessor plus that of the entering edge.
// Sums are memoised per vertex and accumulate from the source outward, in the same
// order as summing the path edge by edge.
type streetTree struct {
	res     *dijkstra.Result
	price   func(e *core.Edge, from string) (float64, error)
	segAttr string
	tag     string
	memo    map[string]float64
}

func newStreetTree(res *dijkstra.Result, price func(*core.Edge, string) (float64, error), segAttr, tag string) *streetTree {
	return &streetTree{
		res:     res,
		price:   price,
		segAttr: segAttr,
		tag:     tag,
		memo:    make(map[string]float64),
	}
}

// cost returns the summed street cost along the recorded path to v.
// Every edge on the path must carry both the cost and the segment attribute.
func (t *streetTree) cost(v string) (float64, error) {
	// Climb until a memoised vertex or a source.
	var stack []string
	cur := v
	for {
		if _, ok := t.memo[cur]; ok {
			break
		}
		if t.res.PrevEdge[cur] == nil {
			t.memo[cur] = 0
			break
		}
		stack = append(stack, cur)
		cur = t.res.Prev[cur]
	}

	// Unwind toward v.
	for i := len(stack) - 1; i >= 0; i-- {
		u := stack[i]
		e := t.res.PrevEdge[u]
		from := t.res.Prev[u]

		seg, ok := e.Attrs.String(t.segAttr)
		if !ok {
			return 0, fmt.Errorf("%w: edge %s (%s→%s) attribute %q", ErrMissingAttribute, e.ID, e.From, e.To, t.segAttr)
		}
		c, err := t.price(e, from)
		if errors.Is(err, dijkstra.ErrMissingAttribute) {
			return 0, fmt.Errorf("%w: %w", ErrMissingAttribute, err)
		}
		if err != nil {
			return 0, err
		}

		acc := t.memo[from]
		if seg == t.tag {
			acc += c
		}
		t.memo[u] = acc
	}

	return t.memo[v], nil
}
