// SPDX-License-Identifier: MIT

package justice

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spatialjustice/table"
)

// VulnerabilityScore derives the vulnerability columns from normalised indicator
// columns, each expected in [0, 1] with higher meaning less vulnerable:
//
//	vul_score = 1 − mean(indicators)
//	vul_prop  = vul_score / sum(vul_score)
//
// vul_prop sums to 1 and is the default weight of Rawls.
//
// Errors: ErrMissingColumn, ErrEmptyTable, ErrZeroTotal (every score is zero).
func VulnerabilityScore(t *table.Table, indicators []string) error {
	if len(indicators) == 0 {
		return errors.New("justice: no vulnerability indicators")
	}
	cols, err := columns(t, indicators...)
	if err != nil {
		return err
	}

	// score = 1 - (c1 + ... + ck) / k
	score := make([]float64, t.Len())
	for _, col := range cols {
		floats.Add(score, col)
	}
	floats.Scale(-1/float64(len(indicators)), score)
	floats.AddConst(1, score)

	total := floats.Sum(score)
	if total == 0 {
		return fmt.Errorf("%w: column %q", ErrZeroTotal, VulnerabilityScoreColumn)
	}
	prop := floats.ScaleTo(make([]float64, len(score)), 1/total, score)

	if err = t.SetFloat(VulnerabilityScoreColumn, score); err != nil {
		return err
	}

	return t.SetFloat(DefaultVulnerabilityColumn, prop)
}
