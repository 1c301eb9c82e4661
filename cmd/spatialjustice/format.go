// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spatialjustice/justice"
)

// printReport writes a compliance table, one line per scheme.
func printReport(w io.Writer, sums []justice.Summary) {
	fmt.Fprintf(w, "%-10s %10s %14s %12s %16s\n", "SCHEME", "COMPLIANT", "NON-COMPLIANT", "% GAP >= 0", "% GAP < 0")
	fmt.Fprintln(w, strings.Repeat("-", 66))
	for _, s := range sums {
		fmt.Fprintf(w, "%-10s %10d %14d %12.1f %16.1f\n",
			s.Scheme, s.Compliant, s.NonCompliant, s.CompliantPct, s.NonCompliantPct)
	}
}

// printSummaryLines writes one sentence per scheme, naming its gap column.
func printSummaryLines(w io.Writer, r string, sums []justice.Summary) {
	for _, s := range sums {
		_, label, _ := s.Scheme.Columns(r)
		fmt.Fprintf(w, "%% spatial units with %s>=0: %.2f, %% spatial units with %s<0: %.2f\n",
			label, s.CompliantPct, label, s.NonCompliantPct)
	}
}
