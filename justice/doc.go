// SPDX-License-Identifier: MIT

// Package justice compares the observed distribution of Reach Values across spatial
// units against three normative baselines.
//
// Overview:
//
//   - Equality: every unit should receive the rounded mean reach.
//   - Utility:  every unit should receive reach in proportion to its population.
//   - Rawls:    every unit should receive reach in proportion to its vulnerability.
//
// Each scheme appends three columns to the unit table, named by prefixing the reach
// column: the normative allocation, the gap (actual minus normative) and the
// compliance flag (gap ≥ 0).
//
//	Scheme    normative  gap  flag
//	Equality  ERC        ERG  Eq
//	Utility   URC        URG  Ut
//	Rawls     RRC        RRG  Ra
//
// The schemes never touch columns they did not introduce, so all three can run on the
// same table at once; AnalyzeAll does exactly that.
//
// Error handling (sentinel errors):
//
//   - ErrMissingColumn: a referenced column is absent; reported before any arithmetic.
//   - ErrEmptyTable:    the table has no rows.
//   - ErrZeroTotal:     a weight column sums to zero, so no proportion exists.
//
// Every scheme also returns a Summary with compliant and non-compliant counts and
// percentages. Formatting those is left to the caller.
package justice
