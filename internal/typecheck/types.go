// Package typecheck implements the positional and keyword argument gates
// of spec §4.4: arity/variadic/optional-tail reshaping, container content
// checks, listify, and since/deprecated feature-gate registration.
package typecheck

import (
	"strings"

	"github.com/bcl-lang/interp/internal/value"
)

// TypeSet is a union of acceptable Kinds for one parameter.
type TypeSet []value.Kind

// Match reports whether v's Kind is in the set. An empty set matches
// anything (used for "any value" parameters).
func (ts TypeSet) Match(v value.Value) bool {
	if len(ts) == 0 {
		return true
	}
	for _, k := range ts {
		if v.Kind() == k {
			return true
		}
	}
	return false
}

func (ts TypeSet) String() string {
	names := make([]string, len(ts))
	for i, k := range ts {
		names[i] = k.String()
	}
	return strings.Join(names, "|")
}

// Of is a convenience constructor: Of(value.KindString, value.KindArray).
func Of(kinds ...value.Kind) TypeSet { return TypeSet(kinds) }
