// File: attrs.go
// Role: Typed lookups over the per-edge attribute map.
// Determinism:
//   - Lookups are pure; no conversion allocates.

package core

// Attrs is the attribute map carried by every Edge.
//
// Values are stored as given by the caller; Float and String perform the
// type narrowing that cost functions and segment filters need.
type Attrs map[string]interface{}

// Float returns the attribute under name as float64.
//
// Every Go integer and float kind is accepted; any other type (or an absent key)
// reports ok == false. The caller decides whether absence is an error.
//
// Complexity: O(1).
func (a Attrs) Float(name string) (float64, bool) {
	v, ok := a[name]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}

	return 0, false
}

// String returns the attribute under name if it is a string.
//
// Complexity: O(1).
func (a Attrs) String(name string) (string, bool) {
	v, ok := a[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)

	return s, ok
}

// Has reports whether name is present, regardless of its type.
func (a Attrs) Has(name string) bool {
	_, ok := a[name]

	return ok
}
