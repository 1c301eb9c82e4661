// SPDX-License-Identifier: MIT

package justice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spatialjustice/table"
)

// Equality assesses the reach column r against the egalitarian baseline: every unit
// should receive round(sum(r) / n), with halves rounded to even.
//
// Writes ERC<r>, ERG<r> and Eq<r>.
func Equality(t *table.Table, r string) (*Result, error) {
	cols, err := columns(t, r)
	if err != nil {
		return nil, err
	}
	actual := cols[0]

	base := math.RoundToEven(floats.Sum(actual) / float64(len(actual)))
	normative := make([]float64, len(actual))
	for i := range normative {
		normative[i] = base
	}

	return assess(t, SchemeEquality, r, actual, normative)
}

// Utility assesses the reach column r against the utilitarian baseline: every unit
// should receive reach in proportion to its value in the population column w.
//
// Writes URC<r>, URG<r> and Ut<r>.
func Utility(t *table.Table, r, w string) (*Result, error) {
	cols, err := columns(t, r, w)
	if err != nil {
		return nil, err
	}
	actual, pop := cols[0], cols[1]

	total := floats.Sum(pop)
	if total == 0 {
		return nil, fmt.Errorf("%w: column %q", ErrZeroTotal, w)
	}
	normative := floats.ScaleTo(make([]float64, len(pop)), floats.Sum(actual)/total, pop)

	return assess(t, SchemeUtility, r, actual, normative)
}

// Rawls assesses the reach column r against the Rawlsian baseline: every unit should
// receive sum(r) times its vulnerability proportion from column v. An empty v selects
// DefaultVulnerabilityColumn.
//
// Writes RRC<r>, RRG<r> and Ra<r>.
func Rawls(t *table.Table, r, v string) (*Result, error) {
	if v == "" {
		v = DefaultVulnerabilityColumn
	}
	cols, err := columns(t, r, v)
	if err != nil {
		return nil, err
	}
	actual, prop := cols[0], cols[1]

	normative := floats.ScaleTo(make([]float64, len(prop)), floats.Sum(actual), prop)

	return assess(t, SchemeRawls, r, actual, normative)
}
