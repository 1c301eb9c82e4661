// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Normalise socioeconomic indicators and derive vulnerability proportions",
	Long: `Min-max normalises the columns listed in justice.normalise (renamed per
justice.rename) and derives vul_score and vul_prop from justice.indicators.`,
	RunE: runPrepare,
}

func init() {
	addInputFlags(prepareCmd.Flags())

	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, _ []string) error {
	applyOverrides(cmd, cfg)
	if cfg.Input.Units == "" {
		return eris.New("prepare: input.units is required")
	}
	log := zap.L().With(zap.String("command", "prepare"))

	units, err := loadUnits(cfg)
	if err != nil {
		return err
	}
	if err = prepareUnits(cfg, units.Table, log); err != nil {
		return err
	}

	return writeOutputs(cfg, units.Table, nil)
}
