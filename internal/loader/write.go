// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spatialjustice/justice"
	"github.com/katalvlaran/spatialjustice/table"
)

// WriteTableCSV writes t as CSV: the key column named keyName, then every column in
// table order. Floats use the shortest exact form; bools are "true"/"false".
func WriteTableCSV(w io.Writer, t *table.Table, keyName string) error {
	cols := t.Columns()
	floats := make(map[string][]float64)
	bools := make(map[string][]bool)
	for _, c := range cols {
		switch t.Kind(c) {
		case table.KindFloat:
			vals, err := t.Float(c)
			if err != nil {
				return eris.Wrap(err, "loader: write table")
			}
			floats[c] = vals
		case table.KindBool:
			vals, err := t.Bool(c)
			if err != nil {
				return eris.Wrap(err, "loader: write table")
			}
			bools[c] = vals
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{keyName}, cols...)); err != nil {
		return eris.Wrap(err, "loader: write header")
	}
	for i, k := range t.Keys() {
		rec := make([]string, 0, len(cols)+1)
		rec = append(rec, k)
		for _, c := range cols {
			if vals, ok := floats[c]; ok {
				rec = append(rec, strconv.FormatFloat(vals[i], 'f', -1, 64))
				continue
			}
			rec = append(rec, strconv.FormatBool(bools[c][i]))
		}
		if err := cw.Write(rec); err != nil {
			return eris.Wrapf(err, "loader: write row %d", i)
		}
	}
	cw.Flush()

	return eris.Wrap(cw.Error(), "loader: flush table")
}

// summaryDoc is the YAML document written by WriteSummariesYAML.
type summaryDoc struct {
	ReachColumn string            `yaml:"reach_column"`
	Units       int               `yaml:"units"`
	Schemes     []justice.Summary `yaml:"schemes"`
}

// WriteSummariesYAML writes the scheme summaries for reach column r over n units.
func WriteSummariesYAML(w io.Writer, r string, n int, sums []justice.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaryDoc{ReachColumn: r, Units: n, Schemes: sums}); err != nil {
		return eris.Wrap(err, "loader: encode summaries")
	}

	return eris.Wrap(enc.Close(), "loader: close summaries")
}

// ReadSummariesYAML reads a document written by WriteSummariesYAML.
func ReadSummariesYAML(r io.Reader) ([]justice.Summary, error) {
	var doc summaryDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, eris.Wrap(err, "loader: decode summaries")
	}

	return doc.Schemes, nil
}
