package value

import "strings"

// Dict maps String keys to Values. Insertion order is preserved for
// iteration (foreach re-sorts it lexicographically per spec §4.2, but the
// order here is what literal construction and Merge preserve for Keys()).
// Comparisons are by content (see equality.go), and keys are always unique.
type Dict struct {
	keys []string
	vals map[string]Value
}

// NewDict builds an empty ordered dict.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]Value)}
}

func (*Dict) Kind() Kind { return KindDict }

func (d *Dict) String() string {
	parts := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		parts = append(parts, "'"+k+"': "+renderElem(d.vals[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Set inserts or overwrites a key, preserving first-insertion order.
func (d *Dict) Set(key string, v Value) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

// Get looks up a key.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Delete removes a key if present.
func (d *Dict) Delete(key string) {
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Keys returns keys in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// SortedKeys returns keys in ascending lexicographic order — the order
// spec §4.2 requires for `foreach k, v : dict`.
func (d *Dict) SortedKeys() []string {
	keys := d.Keys()
	sortStrings(keys)
	return keys
}

// Clone makes a copy, deep-copying any mutable host object nested inside
// (see CloneForAssignment).
func (d *Dict) Clone() *Dict {
	cp := NewDict()
	for _, k := range d.keys {
		cp.Set(k, CloneForAssignment(d.vals[k]))
	}
	return cp
}

// Merge returns a new dict that is the right-biased union of d and other,
// implementing Dict+Dict and Dict+=Dict (spec §4.1, §4.7).
func (d *Dict) Merge(other *Dict) *Dict {
	out := d.Clone()
	for _, k := range other.keys {
		out.Set(k, other.vals[k])
	}
	return out
}

func sortStrings(s []string) {
	// simple insertion sort is fine: dicts in build configs are small and
	// this keeps the package free of an extra import for a one-line need.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
