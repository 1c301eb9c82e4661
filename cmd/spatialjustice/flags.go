// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/spatialjustice/internal/config"
)

// addInputFlags registers the file flags shared by every command.
func addInputFlags(f *pflag.FlagSet) {
	f.String("units", "", "unit table (.csv, .xlsx or .shp; overrides config)")
	f.String("unit-key", "", "unit identifier column (overrides config)")
	f.String("output", "", "output unit table CSV (overrides config)")
}

// addReachFlags registers the Reach Centrality flags.
func addReachFlags(f *pflag.FlagSet) {
	f.String("edges", "", "edge list CSV (overrides config)")
	f.String("vertices", "", "vertex coordinates CSV, used with a shapefile unit table (overrides config)")
	f.String("groups", "", "unit,vertex source groups CSV (overrides config)")
	f.String("targets", "", "target vertices CSV (overrides config)")
	f.Float64("overall", 0, "overall cost threshold (overrides config)")
	f.Float64("walk", 0, "street-only cost threshold (overrides config)")
	f.String("weight", "", "edge cost attribute (overrides config)")
	f.Int("workers", 0, "concurrent group searches (overrides config)")
	f.Bool("directed", false, "treat the edge list as directed (overrides config)")
}

// addDistributeFlags registers the distribution analysis flags.
func addDistributeFlags(f *pflag.FlagSet) {
	f.String("population", "", "Utility weight column (overrides config)")
	f.String("summaries", "", "scheme summaries YAML (overrides config)")
}

// applyOverrides copies every flag the user set onto c.
func applyOverrides(cmd *cobra.Command, c *config.Config) {
	f := cmd.Flags()
	str := func(name string, dst *string) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	num := func(name string, dst *float64) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*dst, _ = f.GetFloat64(name)
		}
	}

	str("units", &c.Input.Units)
	str("unit-key", &c.Input.UnitKey)
	str("output", &c.Output.Table)
	str("edges", &c.Input.Edges)
	str("vertices", &c.Input.Vertices)
	str("groups", &c.Input.Groups)
	str("targets", &c.Input.Targets)
	str("weight", &c.Reach.Weight)
	str("population", &c.Justice.PopulationColumn)
	str("summaries", &c.Output.Summaries)
	num("overall", &c.Reach.OverallThreshold)
	num("walk", &c.Reach.WalkThreshold)
	if f.Lookup("workers") != nil && f.Changed("workers") {
		c.Reach.Workers, _ = f.GetInt("workers")
	}
	if f.Lookup("directed") != nil && f.Changed("directed") {
		c.Input.Directed, _ = f.GetBool("directed")
	}
}
