// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NormSuffix is appended to a column name when Normalise is given no explicit target.
const NormSuffix = "_norm"

// Normalise min-max scales each named float column into [0, 1] and stores the result
// under rename[col], or col+NormSuffix when rename has no entry. Source columns are
// left untouched.
//
// A constant column, which has no spread to scale by, normalises to all zeros.
// Every column is checked before anything is written.
//
// Errors: ErrMissingColumn, ErrWrongKind.
//
// Complexity: O(rows × columns).
func Normalise(t *Table, columns []string, rename map[string]string) error {
	src := make([][]float64, len(columns))
	for i, c := range columns {
		vals, err := t.Float(c)
		if err != nil {
			return err
		}
		src[i] = vals
	}

	for i, c := range columns {
		name, ok := rename[c]
		if !ok {
			name = c + NormSuffix
		}
		if err := t.SetFloat(name, minMax(src[i])); err != nil {
			return fmt.Errorf("table: normalise %q: %w", c, err)
		}
	}

	return nil
}

// minMax scales vals in place to (v-min)/(max-min).
func minMax(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	floats.AddConst(-lo, vals)
	if span := hi - lo; span != 0 {
		floats.Scale(1/span, vals)
	}

	return vals
}
