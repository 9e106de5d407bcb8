package eval

import (
	"github.com/bcl-lang/interp/internal/argreduce"
	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/signal"
	"github.com/bcl-lang/interp/internal/value"
)

func (e *Evaluator) deps() dispatch.ValidateDeps {
	return dispatch.ValidateDeps{
		Subproject: e.Subproject,
		Policy:     e.Policy,
		WarnUnknownKeyword: func(name string) {
			key := e.Subproject + "/" + name
			if e.warnUnknownOnce[key] {
				return
			}
			e.warnUnknownOnce[key] = true
			if e.Warn != nil {
				e.Warn("unknown keyword argument %q", name)
			}
		},
	}
}

func (e *Evaluator) reduceArgs(n *ast.ArgumentNode) (*argreduce.Reduced, error) {
	e.argDepth++
	defer func() { e.argDepth-- }()
	return argreduce.Reduce(n, e.evalExpr, argreduce.DefaultKeyResolver)
}

// evalFunction implements spec §4.2 "Function(name, args) -> §4.5
// dispatch". The reserved name `subdir_done` is the one function call
// that produces a control-flow signal instead of a Value (no AST node
// models SubdirDoneRequest directly, since §6's node-kind list has none, so
// the evaluator recognizes the host-registered name itself).
func (e *Evaluator) evalFunction(n *ast.Function) (value.Value, signal.Signal, error) {
	reduced, err := e.reduceArgs(n.Args)
	if err != nil {
		return nil, signal.None, err
	}
	v, err := e.Dispatch.CallFunction(n.Name, reduced.Positional, reduced.Keywords, e.deps())
	if err != nil {
		return nil, signal.None, err
	}
	if n.Name == "subdir_done" {
		return value.Null{}, signal.SubdirDone, nil
	}
	return v, signal.None, nil
}

// evalMethod implements spec §4.2 "Method(receiver, name, args) -> evaluate
// receiver, then §4.5 method dispatch", including the VersionString
// version_compare side effect described in §3 Invariant 4 and §4.2's
// If-clause tentative-target-version capture.
func (e *Evaluator) evalMethod(n *ast.Method) (value.Value, signal.Signal, error) {
	recv, _, err := e.Eval(n.Receiver)
	if err != nil {
		return nil, signal.None, err
	}
	reduced, err := e.reduceArgs(n.Args)
	if err != nil {
		return nil, signal.None, err
	}
	if s, ok := recv.(value.Str); ok && s.IsVersion && n.Name == "version_compare" && len(reduced.Positional) > 0 {
		if rhs, ok := reduced.Positional[0].(value.Str); ok {
			e.tentativeVer = stripCompareOperator(rhs.S)
		}
	}
	v, err := e.Dispatch.CallMethod(recv, n.Name, reduced.Positional, reduced.Keywords, e.deps())
	if err != nil {
		return nil, signal.None, err
	}
	return v, signal.None, nil
}

func (e *Evaluator) evalAssignment(n *ast.Assignment) (value.Value, signal.Signal, error) {
	if e.argDepth > 0 {
		return nil, signal.None, errors.NewInvalidCode(errors.ARG005, "Tried to assign values inside an argument list.")
	}
	v, _, err := e.Eval(n.Value)
	if err != nil {
		return nil, signal.None, err
	}
	if err := e.Env.Assign(n.Name, v); err != nil {
		return nil, signal.None, err
	}
	return v, signal.None, nil
}

func (e *Evaluator) evalPlusAssignment(n *ast.PlusAssignment) (value.Value, signal.Signal, error) {
	if e.argDepth > 0 {
		return nil, signal.None, errors.NewInvalidCode(errors.ARG005, "Tried to assign values inside an argument list.")
	}
	cur, err := e.Env.Get(n.Name)
	if err != nil {
		return nil, signal.None, err
	}
	rhs, _, err := e.Eval(n.Value)
	if err != nil {
		return nil, signal.None, err
	}
	result, err := plusCombine(cur, rhs)
	if err != nil {
		return nil, signal.None, err
	}
	if err := e.Env.Assign(n.Name, result); err != nil {
		return nil, signal.None, err
	}
	return result, signal.None, nil
}
