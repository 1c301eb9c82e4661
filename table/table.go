// SPDX-License-Identifier: MIT

// Package table holds the row-per-spatial-unit records the distribution analysis reads
// and appends to: a stable list of unit keys and named float or bool columns.
//
// Columns are copied on the way in and on the way out, so a caller never aliases the
// table's storage. A Table is safe for concurrent use; independent analyses may append
// disjoint columns at the same time.
package table

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for table operations.
var (
	// ErrMissingColumn indicates a lookup of a column the table does not hold.
	ErrMissingColumn = errors.New("table: missing column")

	// ErrWrongKind indicates a float lookup of a bool column or vice versa.
	ErrWrongKind = errors.New("table: column has a different kind")

	// ErrLengthMismatch indicates a column whose length differs from the row count.
	ErrLengthMismatch = errors.New("table: column length does not match row count")

	// ErrDuplicateKey indicates two rows with the same unit key.
	ErrDuplicateKey = errors.New("table: duplicate key")

	// ErrEmptyKey indicates an empty unit key or column name.
	ErrEmptyKey = errors.New("table: empty key")
)

// Kind is the value type of a column.
type Kind int

const (
	// KindNone marks an absent column.
	KindNone Kind = iota
	// KindFloat marks a float64 column.
	KindFloat
	// KindBool marks a bool column.
	KindBool
)

// String renders the kind for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}

	return "none"
}

// Table is a keyed, column-oriented record set.
type Table struct {
	mu     sync.RWMutex
	keys   []string
	index  map[string]int
	order  []string // column names in insertion order
	floats map[string][]float64
	bools  map[string][]bool
}

// New creates a table with one row per key, in the given order.
//
// Errors: ErrEmptyKey, ErrDuplicateKey.
func New(keys []string) (*Table, error) {
	t := &Table{
		keys:   make([]string, len(keys)),
		index:  make(map[string]int, len(keys)),
		floats: make(map[string][]float64),
		bools:  make(map[string][]bool),
	}
	for i, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyKey, i)
		}
		if _, dup := t.index[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		t.index[k] = i
		t.keys[i] = k
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.keys)
}

// Keys returns a copy of the unit keys in row order.
func (t *Table) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]string(nil), t.keys...)
}

// Index returns the row of key.
func (t *Table) Index(key string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[key]

	return i, ok
}

// Columns returns the column names in the order they were first set.
func (t *Table) Columns() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]string(nil), t.order...)
}

// Kind reports the kind of column name, KindNone if absent.
func (t *Table) Kind(name string) Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.kindLocked(name)
}

// Has reports whether column name exists.
func (t *Table) Has(name string) bool { return t.Kind(name) != KindNone }

// Require returns ErrMissingColumn naming the first of names that is absent.
func (t *Table) Require(names ...string) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, n := range names {
		if t.kindLocked(n) == KindNone {
			return fmt.Errorf("%w: %q", ErrMissingColumn, n)
		}
	}

	return nil
}

// SetFloat stores a copy of vals under name, replacing any column of that name.
//
// Errors: ErrEmptyKey, ErrLengthMismatch.
func (t *Table) SetFloat(name string, vals []float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkLocked(name, len(vals)); err != nil {
		return err
	}
	t.track(name)
	delete(t.bools, name)
	t.floats[name] = append([]float64(nil), vals...)

	return nil
}

// SetInts stores vals converted to float64 under name.
func (t *Table) SetInts(name string, vals []int) error {
	fs := make([]float64, len(vals))
	for i, v := range vals {
		fs[i] = float64(v)
	}

	return t.SetFloat(name, fs)
}

// SetBool stores a copy of vals under name, replacing any column of that name.
func (t *Table) SetBool(name string, vals []bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.checkLocked(name, len(vals)); err != nil {
		return err
	}
	t.track(name)
	delete(t.floats, name)
	t.bools[name] = append([]bool(nil), vals...)

	return nil
}

// Float returns a copy of the float column name.
//
// Errors: ErrMissingColumn, ErrWrongKind.
func (t *Table) Float(name string) ([]float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	col, ok := t.floats[name]
	if !ok {
		return nil, t.lookupErrLocked(name, KindFloat)
	}

	return append([]float64(nil), col...), nil
}

// Bool returns a copy of the bool column name.
//
// Errors: ErrMissingColumn, ErrWrongKind.
func (t *Table) Bool(name string) ([]bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	col, ok := t.bools[name]
	if !ok {
		return nil, t.lookupErrLocked(name, KindBool)
	}

	return append([]bool(nil), col...), nil
}

// Value returns the cell at (key, name) as float64 or bool.
func (t *Table) Value(key, name string) (interface{}, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[key]
	if !ok {
		return nil, fmt.Errorf("table: unknown key %q", key)
	}
	if col, ok := t.floats[name]; ok {
		return col[i], nil
	}
	if col, ok := t.bools[name]; ok {
		return col[i], nil
	}

	return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func (t *Table) kindLocked(name string) Kind {
	if _, ok := t.floats[name]; ok {
		return KindFloat
	}
	if _, ok := t.bools[name]; ok {
		return KindBool
	}

	return KindNone
}

func (t *Table) checkLocked(name string, n int) error {
	if name == "" {
		return fmt.Errorf("%w: column name", ErrEmptyKey)
	}
	if n != len(t.keys) {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows", ErrLengthMismatch, name, n, len(t.keys))
	}

	return nil
}

// track appends name to the column order unless it is already present under either kind.
func (t *Table) track(name string) {
	if t.kindLocked(name) == KindNone {
		t.order = append(t.order, name)
	}
}

func (t *Table) lookupErrLocked(name string, want Kind) error {
	if got := t.kindLocked(name); got != KindNone {
		return fmt.Errorf("%w: %q is %s, want %s", ErrWrongKind, name, got, want)
	}

	return fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
