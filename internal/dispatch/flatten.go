package dispatch

import "github.com/bcl-lang/interp/internal/value"

// Flatten implements the default argument-flattening policy (spec §4.5,
// Glossary): nested arrays in the positional list are recursively spliced
// into one flat sequence. A non-array element passes through unchanged.
func Flatten(args []value.Value) []value.Value {
	out := make([]value.Value, 0, len(args))
	for _, a := range args {
		if arr, ok := a.(value.Array); ok {
			out = append(out, Flatten(arr.Elems)...)
			continue
		}
		out = append(out, a)
	}
	return out
}
