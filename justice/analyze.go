// SPDX-License-Identifier: MIT

package justice

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spatialjustice/table"
)

// Params names the columns AnalyzeAll reads.
type Params struct {
	// Reach is the actual Reach Value column.
	Reach string
	// Population is the Utility weight column.
	Population string
	// Vulnerability is the Rawls weight column; empty selects DefaultVulnerabilityColumn.
	Vulnerability string
	// Logger receives one info line per scheme; nil disables logging.
	Logger *zap.Logger
}

// Report gathers the outcome of every scheme.
type Report struct {
	Equality *Result
	Utility  *Result
	Rawls    *Result
}

// Summaries returns the scheme summaries in Schemes order.
func (r *Report) Summaries() []Summary {
	return []Summary{r.Equality.Summary, r.Utility.Summary, r.Rawls.Summary}
}

// AnalyzeAll runs Equality, Utility and Rawls concurrently on t. Each scheme writes
// only its own columns. If any scheme fails the first error is returned and the
// Report is nil; columns written by schemes that did succeed stay in the table.
func AnalyzeAll(ctx context.Context, t *table.Table, p Params) (*Report, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	rep := &Report{}
	eg, ctx := errgroup.WithContext(ctx)
	run := func(s Scheme, dst **Result, fn func() (*Result, error)) {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn()
			if err != nil {
				return fmt.Errorf("justice: %s: %w", s, err)
			}
			*dst = res
			log.Info("justice: scheme assessed",
				zap.String("scheme", string(s)),
				zap.Int("compliant", res.Summary.Compliant),
				zap.Int("non_compliant", res.Summary.NonCompliant),
			)

			return nil
		})
	}

	run(SchemeEquality, &rep.Equality, func() (*Result, error) { return Equality(t, p.Reach) })
	run(SchemeUtility, &rep.Utility, func() (*Result, error) { return Utility(t, p.Reach, p.Population) })
	run(SchemeRawls, &rep.Rawls, func() (*Result, error) { return Rawls(t, p.Reach, p.Vulnerability) })

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rep, nil
}
