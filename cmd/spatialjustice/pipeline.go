// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/katalvlaran/spatialjustice/core"
	"github.com/katalvlaran/spatialjustice/dijkstra"
	"github.com/katalvlaran/spatialjustice/internal/config"
	"github.com/katalvlaran/spatialjustice/internal/loader"
	"github.com/katalvlaran/spatialjustice/justice"
	"github.com/katalvlaran/spatialjustice/reach"
	"github.com/katalvlaran/spatialjustice/table"
)

// openWith opens path and hands it to read.
func openWith[T any](path string, read func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, eris.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	return read(f)
}

// createWith creates path and hands it to write.
func createWith(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return eris.Wrapf(f.Close(), "close %s", path)
}

// loadUnits reads the unit table, or builds a bare one from the groups file when no
// unit file is configured.
func loadUnits(c *config.Config) (*loader.Units, error) {
	if c.Input.Units != "" {
		return loader.ReadUnits(c.Input.Units, c.Input.UnitKey, c.Input.Sheet)
	}
	units, _, err := readGroups(c.Input.Groups)
	if err != nil {
		return nil, err
	}
	t, err := table.New(units)
	if err != nil {
		return nil, eris.Wrap(err, "units from groups")
	}

	return &loader.Units{Table: t}, nil
}

func readGroups(path string) ([]string, [][]string, error) {
	type pair struct {
		units  []string
		groups [][]string
	}
	p, err := openWith(path, func(r io.Reader) (pair, error) {
		u, g, err := loader.ReadGroupsCSV(r)
		return pair{u, g}, err
	})

	return p.units, p.groups, err
}

// sourceGroups returns one source group per unit row: from the groups file when set,
// otherwise from unit areas and vertex coordinates.
func sourceGroups(c *config.Config, u *loader.Units) ([][]string, error) {
	keys := u.Table.Keys()
	if c.Input.Groups != "" {
		units, groups, err := readGroups(c.Input.Groups)
		if err != nil {
			return nil, err
		}

		return loader.OrderGroups(keys, units, groups), nil
	}
	if len(u.Areas) == 0 || c.Input.Vertices == "" {
		return nil, eris.New("source groups need input.groups, or a shapefile unit table with input.vertices")
	}
	vertices, err := openWith(c.Input.Vertices, loader.ReadVerticesCSV)
	if err != nil {
		return nil, err
	}

	return loader.AccessPoints(keys, u.Areas, vertices), nil
}

// computeReach runs the Reach Centrality engine and stores the counts in the
// configured reach column.
func computeReach(c *config.Config, u *loader.Units, log *zap.Logger) error {
	g, err := openWith(c.Input.Edges, func(r io.Reader) (*core.Graph, error) {
		return loader.ReadEdgesCSV(r, c.Input.Directed)
	})
	if err != nil {
		return err
	}
	targets, err := openWith(c.Input.Targets, loader.ReadTargetsCSV)
	if err != nil {
		return err
	}
	groups, err := sourceGroups(c, u)
	if err != nil {
		return err
	}

	opts := []reach.Option{
		reach.WithSegmentAttr(c.Reach.SegmentAttr),
		reach.WithStreetTag(c.Reach.StreetTag),
		reach.WithWorkers(c.Reach.Workers),
		reach.WithLogger(log),
	}
	if c.Reach.StreetWeight != "" {
		opts = append(opts, reach.WithStreetWeight(dijkstra.ByAttribute(c.Reach.StreetWeight)))
	}

	log.Info("computing reach",
		zap.Int("units", len(groups)),
		zap.Int("targets", len(targets)),
		zap.Float64("overall_threshold", c.Reach.OverallThreshold),
		zap.Float64("walk_threshold", c.Reach.WalkThreshold),
	)
	counts, err := reach.Compute(g, groups, targets,
		c.Reach.OverallThreshold, c.Reach.WalkThreshold,
		dijkstra.ByAttribute(c.Reach.Weight), opts...)
	if err != nil {
		return eris.Wrap(err, "reach")
	}

	return eris.Wrap(u.Table.SetInts(c.Reach.Column, counts), "store reach column")
}

// prepareUnits normalises the configured columns and derives the vulnerability columns
// when indicators are configured.
func prepareUnits(c *config.Config, t *table.Table, log *zap.Logger) error {
	if len(c.Justice.Normalise) > 0 {
		if err := table.Normalise(t, c.Justice.Normalise, c.Justice.Rename); err != nil {
			return eris.Wrap(err, "normalise")
		}
		log.Info("normalised columns", zap.Strings("columns", c.Justice.Normalise))
	}
	if len(c.Justice.Indicators) > 0 {
		if err := justice.VulnerabilityScore(t, c.Justice.Indicators); err != nil {
			return eris.Wrap(err, "vulnerability score")
		}
		log.Info("vulnerability score derived", zap.Strings("indicators", c.Justice.Indicators))
	}

	return nil
}

// distribute runs every scheme and returns their summaries in reporting order.
func distribute(ctx context.Context, c *config.Config, t *table.Table, log *zap.Logger) ([]justice.Summary, error) {
	rep, err := justice.AnalyzeAll(ctx, t, justice.Params{
		Reach:         c.Reach.Column,
		Population:    c.Justice.PopulationColumn,
		Vulnerability: c.Justice.VulnerabilityColumn,
		Logger:        log,
	})
	if err != nil {
		return nil, eris.Wrap(err, "distribute")
	}

	return rep.Summaries(), nil
}

// writeOutputs writes the unit table and, when sums is non-nil, the summaries.
func writeOutputs(c *config.Config, t *table.Table, sums []justice.Summary) error {
	if c.Output.Table != "" {
		err := createWith(c.Output.Table, func(w io.Writer) error {
			return loader.WriteTableCSV(w, t, c.Input.UnitKey)
		})
		if err != nil {
			return err
		}
	}
	if sums != nil && c.Output.Summaries != "" {
		return createWith(c.Output.Summaries, func(w io.Writer) error {
			return loader.WriteSummariesYAML(w, c.Reach.Column, t.Len(), sums)
		})
	}

	return nil
}
