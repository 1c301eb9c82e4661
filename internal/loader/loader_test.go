// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/spatialjustice/justice"
	"github.com/katalvlaran/spatialjustice/table"
)

func TestReadEdgesCSV(t *testing.T) {
	in := `from,to,time_cost,segment_type
S,A,5,street
A,T,5,street
# comment rows are ignored
S,T,3,
`
	g, err := ReadEdgesCSV(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	edges := g.Edges()
	c, ok := edges[0].Attrs.Float("time_cost")
	assert.True(t, ok)
	assert.Equal(t, 5.0, c)
	seg, ok := edges[0].Attrs.String("segment_type")
	assert.True(t, ok)
	assert.Equal(t, "street", seg)
	assert.False(t, edges[2].Attrs.Has("segment_type"), "empty cell leaves attribute absent")
}

func TestReadEdgesCSV_MissingColumns(t *testing.T) {
	_, err := ReadEdgesCSV(strings.NewReader("a,to\nx,y\n"), false)
	assert.Error(t, err)
	_, err = ReadEdgesCSV(strings.NewReader(""), false)
	assert.Error(t, err)
}

func TestReadVerticesCSV(t *testing.T) {
	got, err := ReadVerticesCSV(strings.NewReader("id,lon,lat\nA,1.5,2\nB,-3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, geom.Coord{1.5, 2}, got["A"])
	assert.Equal(t, geom.Coord{-3, 4}, got["B"])

	_, err = ReadVerticesCSV(strings.NewReader("id,x,y\nA,nope,2\n"))
	assert.Error(t, err)
}

func TestReadGroupsCSV(t *testing.T) {
	in := "unit,vertex\nu2,A\nu1,B\nu2,C\nu3,\n"
	units, groups, err := ReadGroupsCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u1", "u3"}, units)
	assert.Equal(t, [][]string{{"A", "C"}, {"B"}, {}}, groups)

	ordered := OrderGroups([]string{"u1", "u2", "u4"}, units, groups)
	assert.Equal(t, [][]string{{"B"}, {"A", "C"}, {}}, ordered)
}

func TestReadTargetsCSV(t *testing.T) {
	got, err := ReadTargetsCSV(strings.NewReader("vertex\nT1\n\nT2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, got)
}

func TestReadUnitsCSV(t *testing.T) {
	in := "id,name,population,income\nu1,North,100,10\nu2,South,300,30\n"
	tb, err := ReadUnitsCSV(strings.NewReader(in), "id")
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u2"}, tb.Keys())
	assert.Equal(t, []string{"population", "income"}, tb.Columns())
	pop, err := tb.Float("population")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 300}, pop)

	_, err = ReadUnitsCSV(strings.NewReader(in), "code")
	assert.Error(t, err)

	_, err = ReadUnitsCSV(strings.NewReader("id,p\nu1,1\nu1,2\n"), "id")
	assert.ErrorIs(t, err, table.ErrDuplicateKey)
}

func createTestXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Units")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			cell := row.AddCell()
			cell.SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "units.xlsx")
	require.NoError(t, f.Save(path))

	return path
}

func TestReadUnitsXLSX(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"id", "population"},
		{"u1", "12"},
		{"u2", "30"},
	})

	u, err := ReadUnits(path, "id", 0)
	require.NoError(t, err)
	pop, err := u.Table.Float("population")
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 30}, pop)
	assert.Nil(t, u.Areas)

	_, err = ReadUnitsXLSX(path, "id", 3)
	assert.Error(t, err)
}

func square(x0, y0, size float64) []shp.Point {
	return []shp.Point{
		{X: x0, Y: y0},
		{X: x0, Y: y0 + size},
		{X: x0 + size, Y: y0 + size},
		{X: x0 + size, Y: y0},
		{X: x0, Y: y0},
	}
}

func createTestShapefile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "units.shp")
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{
		shp.StringField("ID", 10),
		shp.FloatField("POP", 12, 2),
	}))

	// u1: 10×10 square with a 2×2 hole in the middle; u2: square to the east.
	shapes := []struct {
		id    string
		pop   float64
		parts [][]shp.Point
	}{
		{"u1", 100, [][]shp.Point{square(0, 0, 10), square(4, 4, 2)}},
		{"u2", 50, [][]shp.Point{square(20, 0, 10)}},
	}
	for i, s := range shapes {
		poly := shp.Polygon(*shp.NewPolyLine(s.parts))
		w.Write(&poly)
		require.NoError(t, w.WriteAttribute(i, 0, s.id))
		require.NoError(t, w.WriteAttribute(i, 1, s.pop))
	}
	w.Close()

	// go-shp v0.1.1 writes the attribute table as "unitsdbf"; the reader expects "units.dbf".
	require.NoError(t, os.Rename(filepath.Join(dir, "unitsdbf"), filepath.Join(dir, "units.dbf")))

	return path
}

func TestReadUnitsShapefileAndAccessPoints(t *testing.T) {
	u, err := ReadUnits(createTestShapefile(t), "ID", 0)
	require.NoError(t, err)

	keys := u.Table.Keys()
	assert.Equal(t, []string{"u1", "u2"}, keys)
	pop, err := u.Table.Float("POP")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{100, 50}, pop, 1e-9)
	require.Len(t, u.Areas, 2)

	vertices := map[string]geom.Coord{
		"a": {1, 1},   // u1
		"b": {5, 5},   // u1 hole
		"c": {9, 2},   // u1
		"d": {25, 5},  // u2
		"e": {15, 5},  // between
		"f": {-5, -5}, // outside everything
	}
	got := AccessPoints(append(keys, "u3"), u.Areas, vertices)
	assert.Equal(t, [][]string{{"a", "c"}, {"d"}, {}}, got)
}

func TestReadUnits_UnsupportedExtension(t *testing.T) {
	_, err := ReadUnits(filepath.Join(t.TempDir(), "units.json"), "id", 0)
	assert.Error(t, err)
}

func TestReadUnits_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,pop\nu1,3\n"), 0o644))

	u, err := ReadUnits(path, "id", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, u.Table.Len())
}

func TestWriteTableCSV(t *testing.T) {
	tb, err := table.New([]string{"u1", "u2"})
	require.NoError(t, err)
	require.NoError(t, tb.SetFloat("reach", []float64{3, 0.5}))
	require.NoError(t, tb.SetFloat("Eqreach", []float64{1, 0}))
	require.NoError(t, tb.SetBool("Eqreach", []bool{true, false}))

	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, tb, "id"))
	assert.Equal(t, "id,reach,Eqreach\nu1,3,true\nu2,0.5,false\n", buf.String())

	back, err := ReadUnitsCSV(&buf, "id")
	require.NoError(t, err)
	reach, err := back.Float("reach")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0.5}, reach)
}

func TestSummariesYAML(t *testing.T) {
	sums := []justice.Summary{
		{Scheme: justice.SchemeEquality, Compliant: 1, NonCompliant: 1, CompliantPct: 50, NonCompliantPct: 50},
		{Scheme: justice.SchemeRawls, Compliant: 2, CompliantPct: 100},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummariesYAML(&buf, "reach", 2, sums))
	assert.Contains(t, buf.String(), "reach_column: reach")
	assert.Contains(t, buf.String(), "scheme: equality")

	back, err := ReadSummariesYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, sums, back)
}
