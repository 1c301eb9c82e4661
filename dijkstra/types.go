// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for the multi-source Dijkstra search on attribute-weighted networks.
//
// Every search runs from a set of source vertices at once (all at distance zero)
// and reports, for every vertex it settles, the minimum cost from the nearest
// source and one shortest path achieving that cost. Both come out of the same
// traversal, so a vertex has a distance if and only if it has a path.
//
// Weight:
//
//	– ByAttribute(name): the cost of an edge is its numeric attribute `name`.
//	– ByFunc(fn):        the cost is fn(from, to, attrs); +Inf marks the edge impassable.
//
// Options:
//
//	– WithCutoff: vertices whose distance would exceed the cutoff are not settled.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if a source vertex does not exist in the graph.
//	– ErrNegativeWeight   if a relaxed edge has a negative or NaN cost.
//	– ErrMissingAttribute if a relaxed edge lacks the named cost attribute.
//	– ErrBadCutoff        if the cutoff is negative or NaN.
//	– ErrNoWeight         if the zero Weight is passed.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spatialjustice/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge cost was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrMissingAttribute indicates that an edge lacks the numeric cost attribute.
	ErrMissingAttribute = errors.New("dijkstra: edge missing cost attribute")

	// ErrBadCutoff indicates a negative or NaN cutoff.
	ErrBadCutoff = errors.New("dijkstra: cutoff must be non-negative")

	// ErrNoWeight indicates that neither an attribute name nor a cost function was supplied.
	ErrNoWeight = errors.New("dijkstra: weight is neither an attribute nor a function")
)

// CostFunc computes the cost of traversing an edge from→to with the given attributes.
// Returning math.Inf(1) marks the edge impassable for this search.
type CostFunc func(from, to string, attrs core.Attrs) (float64, error)

// Weight selects how edge cost is derived: a named numeric attribute or a CostFunc.
// The zero Weight is invalid.
type Weight struct {
	attr string
	fn   CostFunc
}

// ByAttribute returns a Weight reading the numeric edge attribute name.
func ByAttribute(name string) Weight { return Weight{attr: name} }

// ByFunc returns a Weight computed by fn.
func ByFunc(fn CostFunc) Weight { return Weight{fn: fn} }

// Attribute returns the attribute name and true if w is an attribute weight.
func (w Weight) Attribute() (string, bool) { return w.attr, w.fn == nil && w.attr != "" }

// IsZero reports whether w selects nothing.
func (w Weight) IsZero() bool { return w.fn == nil && w.attr == "" }

// String renders the weight for logs.
func (w Weight) String() string {
	switch {
	case w.fn != nil:
		return "func"
	case w.attr != "":
		return "attr:" + w.attr
	}

	return "none"
}

// edgeCost is the resolved form of a Weight: the cost of e when leaving vertex from.
type edgeCost func(e *core.Edge, from string) (float64, error)

// resolve turns w into a single cost function. The variant is dispatched once
// here, never per edge.
func (w Weight) resolve() (edgeCost, error) {
	switch {
	case w.fn != nil:
		fn := w.fn

		return func(e *core.Edge, from string) (float64, error) {
			c, err := fn(from, e.Other(from), e.Attrs)
			if err != nil {
				return 0, fmt.Errorf("dijkstra: cost of edge %s: %w", e.ID, err)
			}

			return c, nil
		}, nil
	case w.attr != "":
		name := w.attr

		return func(e *core.Edge, _ string) (float64, error) {
			c, ok := e.Attrs.Float(name)
			if !ok {
				return 0, fmt.Errorf("%w: edge %s (%s→%s) attribute %q", ErrMissingAttribute, e.ID, e.From, e.To, name)
			}

			return c, nil
		}, nil
	}

	return nil, ErrNoWeight
}

// Bind resolves w once and returns a validating cost evaluator for single edges,
// with the same checks as the search (missing attribute, negative or NaN cost).
// Callers that re-walk a path use it to price edges outside a search.
func (w Weight) Bind() (func(e *core.Edge, from string) (float64, error), error) {
	cost, err := w.resolve()
	if err != nil {
		return nil, err
	}

	return func(e *core.Edge, from string) (float64, error) {
		c, err := cost(e, from)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(c) || c < 0 {
			return 0, fmt.Errorf("%w: edge %s weight=%v", ErrNegativeWeight, e.ID, c)
		}

		return c, nil
	}, nil
}

// Options configures the behavior of MultiSource.
//
// Cutoff – vertices whose shortest distance exceeds Cutoff are not settled.
// Default is +Inf (no cap).
type Options struct {
	Cutoff float64
}

// Option represents a functional option for configuring MultiSource.
type Option func(*Options)

// WithCutoff sets a maximum distance; vertices beyond it are neither settled nor reported.
// A negative value is rejected by MultiSource with ErrBadCutoff.
func WithCutoff(max float64) Option {
	return func(o *Options) {
		o.Cutoff = max
	}
}

// DefaultOptions returns Options with no cutoff.
func DefaultOptions() Options {
	return Options{Cutoff: math.Inf(1)}
}
