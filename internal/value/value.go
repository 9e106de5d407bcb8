// Package value implements the DSL's tagged-union value model (spec §3):
// elementary types, containers, host-object values, and the disabler
// sentinel. Values are immutable at the language level except for mutable
// host objects, which are deep-copied on assignment (see §4.7).
package value

import (
	"fmt"
	"strings"
)

// Kind tags the variant of a Value, mirroring the teacher's Type()-string
// convention but as a closed enum so switches are exhaustive-checkable.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindArray
	KindDict
	KindRange
	KindHostObject
	KindDisabler
	KindFile
	// KindNull is not part of the DSL-visible value union in spec §3; it
	// is an internal sentinel the type checker and dispatcher use to fill
	// an unset optional positional parameter or an unset keyword default,
	// matching the host callable contract's "(node, positional-list,
	// keyword-map)" shape where a missing optional must still occupy a
	// slot.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	case KindRange:
		return "range"
	case KindHostObject:
		return "object"
	case KindDisabler:
		return "disabler"
	case KindFile:
		return "file"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Null is the internal "not given" sentinel (see KindNull).
type Null struct{}

func (Null) Kind() Kind      { return KindNull }
func (Null) String() string  { return "null" }

// IsNull reports whether v is the Null sentinel (nil is also treated as
// null, since some callers pass a bare nil for "no default").
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Value is the common interface implemented by every DSL runtime value.
type Value interface {
	Kind() Kind
	String() string
}

// Int is a signed integer value.
type Int struct{ N int64 }

func (Int) Kind() Kind        { return KindInt }
func (v Int) String() string  { return fmt.Sprintf("%d", v.N) }

// Float is a floating-point value.
type Float struct{ N float64 }

func (Float) Kind() Kind       { return KindFloat }
func (v Float) String() string { return fmt.Sprintf("%g", v.N) }

// Bool is a boolean value — the only type that is truthy in conditionals.
type Bool struct{ B bool }

func (Bool) Kind() Kind { return KindBool }
func (v Bool) String() string {
	if v.B {
		return "true"
	}
	return "false"
}

// Str is a string value. IsVersion marks the "version string" subtype
// described in spec §3 Invariant 4 and §9: the tag lives inside the String
// variant rather than as a subclass, and the conditional side-effect of
// version_compare is a method on this type (see eval's version_compare
// dispatch, which reads IsVersion to decide whether to set the tentative
// target version).
type Str struct {
	S         string
	IsVersion bool
}

func (Str) Kind() Kind       { return KindString }
func (v Str) String() string { return v.S }

// NewVersionString tags s as the VersionString subtype.
func NewVersionString(s string) Str { return Str{S: s, IsVersion: true} }

// Array is an ordered, immutable-at-the-language-level sequence.
type Array struct{ Elems []Value }

func (Array) Kind() Kind { return KindArray }
func (v Array) String() string {
	parts := make([]string, len(v.Elems))
	for i, e := range v.Elems {
		parts[i] = renderElem(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Range is a lazy integer sequence [Start, Stop) stepping by Step.
type Range struct{ Start, Stop, Step int64 }

func (Range) Kind() Kind { return KindRange }
func (v Range) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", v.Start, v.Stop, v.Step)
}

// Len returns the number of elements the range yields.
func (v Range) Len() int {
	if v.Step == 0 {
		return 0
	}
	n := (v.Stop - v.Start + v.Step - sign(v.Step)) / v.Step
	if n < 0 {
		return 0
	}
	return int(n)
}

// At returns the i-th element (0-based) of the range.
func (v Range) At(i int) (int64, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	return v.Start + int64(i)*v.Step, true
}

func sign(n int64) int64 {
	if n < 0 {
		return -1
	}
	return 1
}

// Disabler is the sentinel value described in spec §4.6: it propagates
// through calls to short-circuit entire configuration subgraphs.
type Disabler struct{}

func (Disabler) Kind() Kind      { return KindDisabler }
func (Disabler) String() string  { return "<disabler>" }

// File is an opaque, non-callable host handle.
type File struct {
	Name   string
	Handle any
}

func (File) Kind() Kind      { return KindFile }
func (v File) String() string { return fmt.Sprintf("<file: %s>", v.Name) }

func renderElem(v Value) string {
	if s, ok := v.(Str); ok {
		return fmt.Sprintf("%q", s.S)
	}
	return v.String()
}
