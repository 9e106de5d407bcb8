package scenario

import (
	"bytes"
	"fmt"

	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/host"
	"github.com/bcl-lang/interp/internal/value"
)

// Result is the outcome of running one scenario.
type Result struct {
	Spec     *Spec
	Warnings []string
	Err      error
	Mismatch []string // binding name -> mismatch description, empty if all matched
}

// Passed reports whether the scenario's expectations (bindings, or the
// expected error) were all satisfied.
func (r *Result) Passed() bool {
	if r.Spec.ExpectError != "" {
		e, ok := errors.As(r.Err)
		return ok && e.Code == r.Spec.ExpectError
	}
	return r.Err == nil && len(r.Mismatch) == 0
}

// Run executes s against a fresh host.Interpreter: pre-set Vars are
// assigned first, then Steps are built into an AST block and evaluated
// directly (not through eval.Run, which additionally enforces the
// project()-first/non-empty-source contract — that contract gets its own
// dedicated test in internal/eval, so scenario files stay focused on
// expression/statement semantics per spec §8).
func Run(s *Spec) *Result {
	var out bytes.Buffer
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	interp := host.New(&out, s.Subproject)
	interp.Eval.Warn = warn

	for name, lit := range s.Vars {
		v, err := toValue(&lit)
		if err != nil {
			return &Result{Spec: s, Err: err}
		}
		if err := interp.Eval.Env.Assign(name, v); err != nil {
			return &Result{Spec: s, Err: err}
		}
	}

	block, err := BuildBlock(s.Steps)
	if err != nil {
		return &Result{Spec: s, Err: err}
	}

	_, _, err = interp.Eval.Eval(block)
	if err != nil {
		return &Result{Spec: s, Err: err, Warnings: warnings}
	}

	var mismatches []string
	for name, want := range s.Expect {
		wantV, err := toValue(&want)
		if err != nil {
			return &Result{Spec: s, Err: err, Warnings: warnings}
		}
		gotV, ok := interp.Eval.Env.Lookup(name)
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("%s: not bound", name))
			continue
		}
		if !value.Equal(gotV, wantV) {
			mismatches = append(mismatches, fmt.Sprintf("%s: want %s, got %s", name, wantV.String(), gotV.String()))
		}
	}

	return &Result{Spec: s, Warnings: warnings, Mismatch: mismatches}
}
