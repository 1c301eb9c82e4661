// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spatialjustice/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "spatialjustice",
	Short: "Reach Centrality and distributive-justice analysis of urban accessibility",
	Long: `Counts, for every spatial unit, the opportunities reachable over a travel network
within an overall cost budget and a street-only cost budget, then compares that
distribution against Equality, Utility and Rawls baselines.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
