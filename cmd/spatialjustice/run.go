// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spatialjustice/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute reach, prepare indicators and assess all schemes in one pass",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		applyOverrides(cmd, cfg)

		return runPipeline(ctx, cfg, cmd.OutOrStdout(), zap.L().With(zap.String("command", "run")))
	},
}

func init() {
	f := runCmd.Flags()
	addInputFlags(f)
	addReachFlags(f)
	addDistributeFlags(f)

	rootCmd.AddCommand(runCmd)
}

// runPipeline chains reach, prepare and distribute on one unit table.
func runPipeline(ctx context.Context, c *config.Config, out io.Writer, log *zap.Logger) error {
	if err := c.Validate("run"); err != nil {
		return err
	}

	units, err := loadUnits(c)
	if err != nil {
		return err
	}
	if err = computeReach(c, units, log); err != nil {
		return err
	}
	if err = prepareUnits(c, units.Table, log); err != nil {
		return err
	}
	sums, err := distribute(ctx, c, units.Table, log)
	if err != nil {
		return err
	}

	printReport(out, sums)
	printSummaryLines(out, c.Reach.Column, sums)

	return writeOutputs(c, units.Table, sums)
}
