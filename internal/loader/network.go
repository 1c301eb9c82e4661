// SPDX-License-Identifier: MIT

package loader

import (
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/katalvlaran/spatialjustice/core"
)

// ReadEdgesCSV builds a network from an edge list. The header must name a "from"
// (or "source"/"u") and a "to" (or "target"/"v") column; every other column becomes
// an edge attribute, stored as float64 when it parses as a number and as string
// otherwise. Empty cells are omitted, so a missing attribute is detectable.
//
// Parallel edges are kept. directed selects a directed network.
func ReadEdgesCSV(r io.Reader, directed bool) (*core.Graph, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, eris.Wrap(err, "loader: edges")
	}
	idx := columnIndex(header)
	fromIdx, ok := lookup(idx, "from", "source", "u")
	if !ok {
		return nil, eris.New("loader: edges: missing from column")
	}
	toIdx, ok := lookup(idx, "to", "target", "v")
	if !ok {
		return nil, eris.New("loader: edges: missing to column")
	}

	g := core.NewGraph(core.WithDirected(directed), core.WithMultiEdges(), core.WithLoops())
	for n, row := range rows {
		from, to := field(row, fromIdx), field(row, toIdx)
		attrs := make(map[string]interface{}, len(header))
		for i, name := range header {
			if i == fromIdx || i == toIdx {
				continue
			}
			val := field(row, i)
			if val == "" {
				continue
			}
			if f, perr := strconv.ParseFloat(val, 64); perr == nil {
				attrs[name] = f
			} else {
				attrs[name] = val
			}
		}
		if _, err = g.AddEdge(from, to, core.WithEdgeAttrs(attrs)); err != nil {
			return nil, eris.Wrapf(err, "loader: edges: row %d", n+2)
		}
	}

	zap.L().Debug("loader: network loaded",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// ReadVerticesCSV reads vertex coordinates from an "id,x,y" list ("lon"/"lat" are
// accepted for x/y).
func ReadVerticesCSV(r io.Reader) (map[string]geom.Coord, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, eris.Wrap(err, "loader: vertices")
	}
	idx := columnIndex(header)
	idIdx, ok1 := lookup(idx, "id", "vertex", "node")
	xIdx, ok2 := lookup(idx, "x", "lon", "lng")
	yIdx, ok3 := lookup(idx, "y", "lat")
	if !ok1 || !ok2 || !ok3 {
		return nil, eris.New("loader: vertices: header must name id, x and y")
	}

	out := make(map[string]geom.Coord, len(rows))
	for n, row := range rows {
		x, err := strconv.ParseFloat(field(row, xIdx), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "loader: vertices: row %d x", n+2)
		}
		y, err := strconv.ParseFloat(field(row, yIdx), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "loader: vertices: row %d y", n+2)
		}
		out[field(row, idIdx)] = geom.Coord{x, y}
	}

	return out, nil
}
