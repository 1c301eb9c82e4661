// SPDX-License-Identifier: MIT

package justice

import (
	"errors"

	"github.com/katalvlaran/spatialjustice/table"
)

// Sentinel errors for the distribution analysis.
var (
	// ErrMissingColumn is table.ErrMissingColumn, re-exported for callers of this package.
	ErrMissingColumn = table.ErrMissingColumn

	// ErrEmptyTable indicates a table without rows.
	ErrEmptyTable = errors.New("justice: empty table")

	// ErrZeroTotal indicates a weight column whose sum is zero.
	ErrZeroTotal = errors.New("justice: weights sum to zero")
)

// Default column names.
const (
	// DefaultVulnerabilityColumn holds each unit's share of total vulnerability.
	DefaultVulnerabilityColumn = "vul_prop"

	// VulnerabilityScoreColumn holds 1 minus the mean of the vulnerability indicators.
	VulnerabilityScoreColumn = "vul_score"
)

// Scheme names one normative baseline.
type Scheme string

const (
	// SchemeEquality gives every unit the rounded mean reach.
	SchemeEquality Scheme = "equality"
	// SchemeUtility gives every unit reach in proportion to population.
	SchemeUtility Scheme = "utility"
	// SchemeRawls gives every unit reach in proportion to vulnerability.
	SchemeRawls Scheme = "rawls"
)

// Schemes lists every scheme in reporting order.
var Schemes = []Scheme{SchemeEquality, SchemeUtility, SchemeRawls}

var prefixes = map[Scheme][3]string{
	SchemeEquality: {"ERC", "ERG", "Eq"},
	SchemeUtility:  {"URC", "URG", "Ut"},
	SchemeRawls:    {"RRC", "RRG", "Ra"},
}

// Columns returns the normative, gap and flag column names scheme s writes for the
// reach column r.
func (s Scheme) Columns(r string) (normative, gap, flag string) {
	p := prefixes[s]

	return p[0] + r, p[1] + r, p[2] + r
}

// Summary reports how many units meet their normative allocation.
type Summary struct {
	Scheme          Scheme  `yaml:"scheme"`
	Compliant       int     `yaml:"compliant"`
	NonCompliant    int     `yaml:"non_compliant"`
	CompliantPct    float64 `yaml:"compliant_pct"`
	NonCompliantPct float64 `yaml:"non_compliant_pct"`
}

// Result holds one scheme's per-unit outcome, in table row order.
type Result struct {
	Normative []float64
	Gap       []float64
	Compliant []bool
	Summary   Summary
}
