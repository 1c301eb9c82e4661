// SPDX-License-Identifier: MIT

package loader

import (
	"sort"

	"github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"go.uber.org/zap"
)

// AccessPoints returns, for each key in order, the sorted IDs of the vertices lying
// inside that unit's area. Shapefile rings follow the even-odd rule: a vertex inside
// an outer ring and one of its holes is outside. Keys without an area get an empty
// group.
func AccessPoints(keys []string, areas map[string]*geom.MultiPolygon, vertices map[string]geom.Coord) [][]string {
	ids := make([]string, 0, len(vertices))
	for id := range vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([][]string, len(keys))
	for i, k := range keys {
		out[i] = []string{}
		mp, ok := areas[k]
		if !ok {
			continue
		}
		bounds := mp.Bounds()
		for _, id := range ids {
			c := vertices[id]
			if !bounds.OverlapsPoint(geom.XY, c) {
				continue
			}
			if inside(mp, c) {
				out[i] = append(out[i], id)
			}
		}
		if len(out[i]) == 0 {
			zap.L().Debug("loader: unit has no access points", zap.String("unit", k))
		}
	}

	return out
}

// inside applies the even-odd rule over every ring of mp.
func inside(mp *geom.MultiPolygon, c geom.Coord) bool {
	var n int
	for i := 0; i < mp.NumPolygons(); i++ {
		p := mp.Polygon(i)
		for j := 0; j < p.NumLinearRings(); j++ {
			if xy.IsPointInRing(geom.XY, c, p.LinearRing(j).FlatCoords()) {
				n++
			}
		}
	}

	return n%2 == 1
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon with one
// single-ring polygon per part.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY)
	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		end := int32(len(p.Points))
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		}

		flat := make([]float64, 0, 2*(end-start))
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(geom.NewLinearRingFlat(geom.XY, flat)); err != nil {
			zap.L().Debug("loader: skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("loader: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}
	if mp.NumPolygons() == 0 {
		return nil
	}

	return mp
}
