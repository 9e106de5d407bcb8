// Package srctext NFC-normalizes text, so combining-character variants
// (e.g. "é" as one codepoint vs. "e" + combining acute) compare equal
// (SPEC_FULL.md DOMAIN STACK). The evaluator applies it to the rendered
// result of a format string; identifier lookup in the environment does not
// normalize names.
package srctext

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode Normalization Form C.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// NormalizeIdent normalizes a bare identifier the way Normalize does; kept
// as a distinct name since callers that only ever pass `@NAME@` tokens or
// variable names read better calling this than the generic Normalize.
func NormalizeIdent(name string) string {
	return norm.NFC.String(name)
}

// Equal reports whether a and b are the same text once both are
// NFC-normalized — used to compare identifiers without requiring callers
// to normalize both sides themselves.
func Equal(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}
