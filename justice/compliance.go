// SPDX-License-Identifier: MIT

package justice

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spatialjustice/table"
)

// assess derives gaps and compliance from actual and normative, writes the scheme's
// three columns and returns the Result.
func assess(t *table.Table, s Scheme, r string, actual, normative []float64) (*Result, error) {
	n := len(actual)
	res := &Result{
		Normative: normative,
		Gap:       floats.SubTo(make([]float64, n), actual, normative),
		Compliant: make([]bool, n),
		Summary:   Summary{Scheme: s},
	}
	for i := range actual {
		res.Compliant[i] = res.Gap[i] >= 0
		if res.Compliant[i] {
			res.Summary.Compliant++
		}
	}
	res.Summary.NonCompliant = n - res.Summary.Compliant
	res.Summary.CompliantPct = float64(res.Summary.Compliant) / float64(n) * 100
	res.Summary.NonCompliantPct = float64(res.Summary.NonCompliant) / float64(n) * 100

	normCol, gapCol, flagCol := s.Columns(r)
	if err := t.SetFloat(normCol, res.Normative); err != nil {
		return nil, fmt.Errorf("justice: %s: %w", s, err)
	}
	if err := t.SetFloat(gapCol, res.Gap); err != nil {
		return nil, fmt.Errorf("justice: %s: %w", s, err)
	}
	if err := t.SetBool(flagCol, res.Compliant); err != nil {
		return nil, fmt.Errorf("justice: %s: %w", s, err)
	}

	return res, nil
}

// columns fetches the named float columns, failing on the first absent one before any
// value is read.
func columns(t *table.Table, names ...string) ([][]float64, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if err := t.Require(names...); err != nil {
		return nil, err
	}
	out := make([][]float64, len(names))
	for i, n := range names {
		col, err := t.Float(n)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}

	return out, nil
}
