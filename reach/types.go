// SPDX-License-Identifier: MIT

package reach

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/spatialjustice/dijkstra"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidThreshold indicates a negative or NaN overall or walk threshold.
	ErrInvalidThreshold = errors.New("reach: threshold must be non-negative")

	// ErrMissingAttribute indicates that an edge on a counted path lacks the street
	// cost attribute or the segment type attribute.
	ErrMissingAttribute = errors.New("reach: edge missing required attribute")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("reach: workers must be positive")
)

// Defaults for the segment tagging of a network.
const (
	DefaultSegmentAttr = "segment_type"
	DefaultStreetTag   = "street"
)

// GroupReach is the detailed outcome for one source group.
type GroupReach struct {
	// Count is the number of targets passing both thresholds.
	Count int

	// Targets lists the counted target IDs in ascending order.
	Targets []string
}

// Options configures a Compute call.
type Options struct {
	SegmentAttr  string          // edge attribute holding the segment type
	StreetTag    string          // segment value that marks a street (walking) edge
	StreetWeight dijkstra.Weight // cost summed over street edges; zero means the search weight
	Workers      int             // concurrent group searches
	Logger       *zap.Logger
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithSegmentAttr sets the edge attribute that holds the segment type.
func WithSegmentAttr(name string) Option {
	return func(o *Options) { o.SegmentAttr = name }
}

// WithStreetTag sets the segment value that identifies street edges.
func WithStreetTag(tag string) Option {
	return func(o *Options) { o.StreetTag = tag }
}

// WithStreetWeight prices street edges with w instead of the search weight.
func WithStreetWeight(w dijkstra.Weight) Option {
	return func(o *Options) { o.StreetWeight = w }
}

// WithWorkers runs up to n group searches concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger receiving per-group debug lines.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns single-worker options with the default segment tagging
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		SegmentAttr: DefaultSegmentAttr,
		StreetTag:   DefaultStreetTag,
		Workers:     1,
		Logger:      zap.NewNop(),
	}
}
