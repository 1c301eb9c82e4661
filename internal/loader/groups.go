// SPDX-License-Identifier: MIT

package loader

import (
	"io"

	"github.com/rotisserie/eris"
)

// ReadGroupsCSV reads source groups from a long "unit,vertex" list. Units appear in
// order of first mention; a unit row with an empty vertex yields an empty group.
func ReadGroupsCSV(r io.Reader) (units []string, groups [][]string, err error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, nil, eris.Wrap(err, "loader: groups")
	}
	idx := columnIndex(header)
	unitIdx, ok := lookup(idx, "unit", "id")
	if !ok {
		return nil, nil, eris.New("loader: groups: missing unit column")
	}
	vIdx, ok := lookup(idx, "vertex", "node", "source")
	if !ok {
		return nil, nil, eris.New("loader: groups: missing vertex column")
	}

	pos := make(map[string]int)
	for _, row := range rows {
		u := field(row, unitIdx)
		if u == "" {
			continue
		}
		i, seen := pos[u]
		if !seen {
			i = len(units)
			pos[u] = i
			units = append(units, u)
			groups = append(groups, []string{})
		}
		if v := field(row, vIdx); v != "" {
			groups[i] = append(groups[i], v)
		}
	}

	return units, groups, nil
}

// ReadTargetsCSV reads target vertex IDs from the "vertex" (or first) column.
func ReadTargetsCSV(r io.Reader) ([]string, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, eris.Wrap(err, "loader: targets")
	}
	col, ok := lookup(columnIndex(header), "vertex", "node", "target", "id")
	if !ok {
		col = 0
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if v := field(row, col); v != "" {
			out = append(out, v)
		}
	}

	return out, nil
}

// OrderGroups rearranges groups read for units into the row order of keys. A key
// without a group gets an empty one.
func OrderGroups(keys, units []string, groups [][]string) [][]string {
	byUnit := make(map[string][]string, len(units))
	for i, u := range units {
		byUnit[u] = groups[i]
	}
	out := make([][]string, len(keys))
	for i, k := range keys {
		if g, ok := byUnit[k]; ok {
			out[i] = g
			continue
		}
		out[i] = []string{}
	}

	return out
}
