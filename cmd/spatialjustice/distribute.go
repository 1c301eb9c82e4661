// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Assess the reach distribution against Equality, Utility and Rawls baselines",
	Long: `Reads a unit table that already holds the reach column and appends, per scheme,
the normative allocation, the gap and the compliance flag.

Examples:
  distribute --units units_out.csv --population pop_15_64 --summaries summary.yaml`,
	RunE: runDistribute,
}

func init() {
	f := distributeCmd.Flags()
	addInputFlags(f)
	addDistributeFlags(f)

	rootCmd.AddCommand(distributeCmd)
}

func runDistribute(cmd *cobra.Command, _ []string) error {
	applyOverrides(cmd, cfg)
	if err := cfg.Validate("distribute"); err != nil {
		return err
	}
	log := zap.L().With(zap.String("command", "distribute"))

	units, err := loadUnits(cfg)
	if err != nil {
		return err
	}
	sums, err := distribute(cmd.Context(), cfg, units.Table, log)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), sums)

	return writeOutputs(cfg, units.Table, sums)
}
