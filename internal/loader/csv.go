// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// readCSV reads every record of r, trimming whitespace in each field. The first
// record is returned separately as the header.
func readCSV(r io.Reader) (header []string, rows [][]string, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.Comment = '#'

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, eris.Wrap(err, "csv: read row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}
	if header == nil {
		return nil, nil, eris.New("csv: missing header")
	}

	return header, rows, nil
}

// columnIndex maps lower-cased header names to their position.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(h)] = i
	}

	return idx
}

// lookup returns the position of the first of names present in idx.
func lookup(idx map[string]int, names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := idx[strings.ToLower(n)]; ok {
			return i, true
		}
	}

	return 0, false
}

// field returns row[i], or "" when the row is short.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
