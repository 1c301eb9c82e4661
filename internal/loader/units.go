// SPDX-License-Identifier: MIT

package loader

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/katalvlaran/spatialjustice/table"
)

// Units is a unit table plus, for shapefile input, each unit's area keyed by unit key.
type Units struct {
	Table *table.Table
	Areas map[string]*geom.MultiPolygon
}

// ReadUnits loads a unit table from path, choosing the reader by extension:
// .csv, .xlsx (sheet selects the worksheet) or .shp. key names the unit identifier
// column.
func ReadUnits(path, key string, sheet int) (*Units, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "loader: open %s", path)
		}
		defer func() { _ = f.Close() }()
		t, err := ReadUnitsCSV(f, key)
		if err != nil {
			return nil, err
		}

		return &Units{Table: t}, nil
	case ".xlsx":
		t, err := ReadUnitsXLSX(path, key, sheet)
		if err != nil {
			return nil, err
		}

		return &Units{Table: t}, nil
	case ".shp":
		return ReadUnitsShapefile(path, key)
	}

	return nil, eris.Errorf("loader: unsupported unit file %q", path)
}

// ReadUnitsCSV reads a unit table from CSV. Every non-key column whose cells all
// parse as numbers becomes a float column; other columns are skipped.
func ReadUnitsCSV(r io.Reader, key string) (*table.Table, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, eris.Wrap(err, "loader: units")
	}

	return buildTable(header, rows, key)
}

// ReadUnitsXLSX reads a unit table from the given worksheet; the first row is the header.
func ReadUnitsXLSX(path, key string, sheet int) (*table.Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if sheet < 0 || sheet >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", sheet, len(f.Sheets))
	}

	var header []string
	var rows [][]string
	for _, row := range f.Sheets[sheet].Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = strings.TrimSpace(cell.String())
		}
		if header == nil {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}
	if header == nil {
		return nil, eris.New("xlsx: empty sheet")
	}

	return buildTable(header, rows, key)
}

// ReadUnitsShapefile reads the attribute table of a polygon shapefile as the unit
// table and keeps each record's polygon as the unit's area. Records without a
// polygon shape keep their attributes but get no area.
func ReadUnitsShapefile(path, key string) (*Units, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = strings.TrimRight(f.String(), "\x00")
	}
	keyIdx, ok := lookup(columnIndex(header), key)
	if !ok {
		return nil, eris.Errorf("loader: shapefile has no %q field", key)
	}

	var rows [][]string
	areas := make(map[string]*geom.MultiPolygon)
	var skipped int
	for reader.Next() {
		_, shape := reader.Shape()
		row := make([]string, len(fields))
		for i := range fields {
			row[i] = strings.TrimSpace(strings.TrimRight(reader.Attribute(i), "\x00"))
		}
		rows = append(rows, row)

		poly, ok := shape.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}
		if mp := polygonToMultiPolygon(poly); mp != nil {
			areas[row[keyIdx]] = mp
		} else {
			skipped++
		}
	}
	if skipped > 0 {
		zap.L().Debug("loader: shapefile records without area",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	t, err := buildTable(header, rows, key)
	if err != nil {
		return nil, err
	}

	return &Units{Table: t, Areas: areas}, nil
}

// buildTable turns string rows into a unit table keyed by the key column.
func buildTable(header []string, rows [][]string, key string) (*table.Table, error) {
	keyIdx, ok := lookup(columnIndex(header), key)
	if !ok {
		return nil, eris.Errorf("loader: units: missing key column %q", key)
	}

	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = field(row, keyIdx)
	}
	t, err := table.New(keys)
	if err != nil {
		return nil, eris.Wrap(err, "loader: units")
	}

	for c, name := range header {
		if c == keyIdx || name == "" {
			continue
		}
		vals, ok := numericColumn(rows, c)
		if !ok {
			zap.L().Debug("loader: skipping non-numeric column", zap.String("column", name))
			continue
		}
		if err = t.SetFloat(name, vals); err != nil {
			return nil, eris.Wrapf(err, "loader: units: column %q", name)
		}
	}

	return t, nil
}

// numericColumn parses column c of every row; ok is false if any cell is not a number.
func numericColumn(rows [][]string, c int) ([]float64, bool) {
	vals := make([]float64, len(rows))
	for i, row := range rows {
		v, err := strconv.ParseFloat(field(row, c), 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}

	return vals, true
}
