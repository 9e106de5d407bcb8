package host

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/featurepolicy"
)

// ColorWarn builds a featurepolicy.WarnFunc that writes yellow-highlighted
// warnings to w, the reference CLI's diagnostic sink (SPEC_FULL.md AMBIENT
// STACK "logging & diagnostics" — the teacher's cmd/ailang used the same
// color.New(...).Fprintln pattern for run/check output).
func ColorWarn(w io.Writer) featurepolicy.WarnFunc {
	warn := color.New(color.FgYellow)
	return func(format string, args ...any) {
		warn.Fprintf(w, "warning: "+format+"\n", args...)
	}
}

// ReportError prints err to w in red, including its location if the error
// carries one (errors.Error.Loc), falling back to a plain write for any
// non-*errors.Error.
func ReportError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	if e, ok := errors.As(err); ok {
		red.Fprintln(w, e.Error())
		return
	}
	red.Fprintln(w, err.Error())
}

// ReportOK prints a green success line, the reference CLI's counterpart to
// ReportError.
func ReportOK(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, format+"\n", args...)
}

// ReportInfo prints a cyan informational line.
func ReportInfo(w io.Writer, format string, args ...any) {
	color.New(color.FgCyan).Fprintf(w, format+"\n", args...)
}

// DefaultWarn is a convenience WarnFunc writing to stderr, used where a
// caller has no specific writer handy (e.g. package-level tests).
var DefaultWarn = ColorWarn(os.Stderr)
