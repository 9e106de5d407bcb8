package eval

import (
	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/signal"
)

// Run is the top-level entry point (spec §4.2, §7): source must be
// non-empty and its first statement must be a call to `project`. A
// top-level SubdirDone is swallowed — it is only meaningful as an early
// exit signal inside a subdir walk the host drives, which is outside this
// module's scope.
func Run(e *Evaluator, block *ast.CodeBlock) error {
	if block == nil || len(block.Statements) == 0 {
		return errors.NewInvalidCode(errors.EVL005, "source is empty")
	}
	first, ok := block.Statements[0].(*ast.Function)
	if !ok || first.Name != "project" {
		return errors.NewInvalidCode(errors.EVL004, "the first statement must be a call to project()")
	}
	_, sig, err := e.Eval(block)
	if err != nil {
		return err
	}
	if sig != signal.None && sig != signal.SubdirDone {
		return errors.NewInterpreterException("", "unexpected top-level control-flow signal %q", sig)
	}
	return nil
}
