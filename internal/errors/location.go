// Package errors provides the interpreter's error taxonomy and
// location-tagging of failures (spec §7).
package errors

import "fmt"

// Location is a source position: file, 1-based line, 1-based column.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether the location has never been set.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
