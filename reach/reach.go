// SPDX-License-Identifier: MIT

package reach

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spatialjustice/core"
	"github.com/katalvlaran/spatialjustice/dijkstra"
)

// Compute returns, for every source group, the number of targets reachable within
// both thresholds. The result has one entry per group, in group order, and is freshly
// allocated on every call.
//
// An empty group yields 0. Targets that are unreachable, beyond overall, or absent
// from the graph are not counted.
//
// Complexity: one multi-source Dijkstra per group, O(E log V) each, plus
// O(V) to price the shortest-path tree.
func Compute(
	g *core.Graph,
	groups [][]string,
	targets []string,
	overall, walk float64,
	w dijkstra.Weight,
	opts ...Option,
) ([]int, error) {
	detail, err := ComputeDetailed(g, groups, targets, overall, walk, w, opts...)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(detail))
	for i, d := range detail {
		counts[i] = d.Count
	}

	return counts, nil
}

// ComputeDetailed is Compute, additionally reporting which targets each group reaches.
func ComputeDetailed(
	g *core.Graph,
	groups [][]string,
	targets []string,
	overall, walk float64,
	w dijkstra.Weight,
	opts ...Option,
) ([]GroupReach, error) {
	if math.IsNaN(overall) || overall < 0 {
		return nil, fmt.Errorf("%w: overall=%v", ErrInvalidThreshold, overall)
	}
	if math.IsNaN(walk) || walk < 0 {
		return nil, fmt.Errorf("%w: walk=%v", ErrInvalidThreshold, walk)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}

	streetWeight := cfg.StreetWeight
	if streetWeight.IsZero() {
		streetWeight = w
	}
	price, err := streetWeight.Bind()
	if err != nil {
		return nil, err
	}

	targetSet := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	e := &engine{
		g:       g,
		targets: targetSet,
		overall: overall,
		walk:    walk,
		weight:  w,
		price:   price,
		cfg:     cfg,
	}

	out := make([]GroupReach, len(groups))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(cfg.Workers)
	for i, sources := range groups {
		i, sources := i, sources
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil // another group already failed
			}
			gr, err := e.group(sources)
			if err != nil {
				return fmt.Errorf("reach: group %d: %w", i, err)
			}
			out[i] = gr
			cfg.Logger.Debug("reach: group computed",
				zap.Int("group", i),
				zap.Int("sources", len(sources)),
				zap.Int("count", gr.Count),
			)

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// engine holds the per-call, read-only state shared by all group searches.
type engine struct {
	g       *core.Graph
	targets map[string]struct{}
	overall float64
	walk    float64
	weight  dijkstra.Weight
	price   func(e *core.Edge, from string) (float64, error)
	cfg     Options
}

// group runs one search and applies both thresholds.
func (e *engine) group(sources []string) (GroupReach, error) {
	if len(sources) == 0 {
		return GroupReach{Targets: []string{}}, nil
	}

	res, err := dijkstra.MultiSource(e.g, sources, e.weight, dijkstra.WithCutoff(e.overall))
	if errors.Is(err, dijkstra.ErrMissingAttribute) {
		return GroupReach{}, fmt.Errorf("%w: %w", ErrMissingAttribute, err)
	}
	if err != nil {
		return GroupReach{}, err
	}

	var candidates []string
	for v, d := range res.Dist {
		if d > e.overall {
			continue
		}
		if _, ok := e.targets[v]; ok {
			candidates = append(candidates, v)
		}
	}
	sort.Strings(candidates)

	tree := newStreetTree(res, e.price, e.cfg.SegmentAttr, e.cfg.StreetTag)
	counted := make([]string, 0, len(candidates))
	for _, v := range candidates {
		street, err := tree.cost(v)
		if err != nil {
			return GroupReach{}, err
		}
		if street <= e.walk {
			counted = append(counted, v)
		}
	}

	return GroupReach{Count: len(counted), Targets: counted}, nil
}
