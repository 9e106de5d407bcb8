// Package eval implements the statement/expression tree walker (spec
// §4.2): control flow, arithmetic, comparison, indexing, for-each,
// assignment, and format strings, composed on top of internal/argreduce,
// internal/dispatch, and internal/featurepolicy.
package eval

import (
	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/env"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/featurepolicy"
	"github.com/bcl-lang/interp/internal/signal"
	"github.com/bcl-lang/interp/internal/value"
)

// Evaluator walks an AST produced by an external parser, evaluating each
// node against an Environment via the Dispatcher and FeaturePolicy layers.
type Evaluator struct {
	Env        *env.Environment
	Dispatch   *dispatch.Dispatcher
	Policy     *featurepolicy.Policy
	Cmp        featurepolicy.VersionCompare
	Warn       featurepolicy.WarnFunc
	Subproject string

	argDepth        int
	tentativeVer    string
	warnUnknownOnce map[string]bool
}

// New builds an Evaluator over an already-populated Environment and
// Dispatcher; cmp and warn come from the host (spec §6).
func New(e *env.Environment, d *dispatch.Dispatcher, policy *featurepolicy.Policy, cmp featurepolicy.VersionCompare, warn featurepolicy.WarnFunc, subproject string) *Evaluator {
	return &Evaluator{
		Env:             e,
		Dispatch:        d,
		Policy:          policy,
		Cmp:             cmp,
		Warn:            warn,
		Subproject:      subproject,
		warnUnknownOnce: make(map[string]bool),
	}
}

// Eval is the single recursive entry point for both statements and
// expressions: every node kind produces a (Value, Signal, error) triple,
// with pure expressions always returning signal.None (spec §9 design
// note on not conflating control-flow with error propagation).
func (e *Evaluator) Eval(node ast.Node) (value.Value, signal.Signal, error) {
	switch n := node.(type) {
	case *ast.CodeBlock:
		return e.evalBlock(n)
	case *ast.Function:
		return e.evalFunction(n)
	case *ast.Method:
		return e.evalMethod(n)
	case *ast.Assignment:
		return e.evalAssignment(n)
	case *ast.PlusAssignment:
		return e.evalPlusAssignment(n)
	case *ast.If:
		return e.evalIf(n)
	case *ast.Foreach:
		return e.evalForeach(n)
	case *ast.Ternary:
		return e.evalTernary(n)
	case *ast.FormatString:
		return e.evalFormatString(n)
	case *ast.ArrayLit:
		return e.evalArrayLit(n)
	case *ast.DictLit:
		return e.evalDictLit(n)
	case *ast.Index:
		return e.evalIndex(n)
	case *ast.Comparison:
		return e.evalComparison(n)
	case *ast.Arithmetic:
		return e.evalArithmetic(n)
	case *ast.And:
		return e.evalAnd(n)
	case *ast.Or:
		return e.evalOr(n)
	case *ast.Not:
		return e.evalNot(n)
	case *ast.UMinus:
		return e.evalUMinus(n)
	case *ast.StringLit:
		return value.Str{S: n.Value}, signal.None, nil
	case *ast.NumberLit:
		if n.IsFloat {
			return value.Float{N: n.Float}, signal.None, nil
		}
		return value.Int{N: n.Int}, signal.None, nil
	case *ast.BooleanLit:
		return value.Bool{B: n.Value}, signal.None, nil
	case *ast.Id:
		v, err := e.Env.Get(n.Name)
		if err != nil {
			return nil, signal.None, err
		}
		return v, signal.None, nil
	case *ast.Continue:
		return value.Null{}, signal.Continue, nil
	case *ast.Break:
		return value.Null{}, signal.Break, nil
	case *ast.Empty:
		return value.Null{}, signal.None, nil
	default:
		return nil, signal.None, errors.NewInterpreterException("", "unknown AST node %T", node)
	}
}

// evalBlock runs statements in source order, stopping (and propagating)
// at the first error or non-None signal.
func (e *Evaluator) evalBlock(b *ast.CodeBlock) (value.Value, signal.Signal, error) {
	last := value.Value(value.Null{})
	for _, stmt := range b.Statements {
		v, sig, err := e.Eval(stmt)
		if err != nil {
			if node, ok := stmt.(ast.Node); ok {
				err = errors.WithLocationIfMissing(err, node.Position().Loc())
			}
			return nil, signal.None, err
		}
		last = v
		if sig != signal.None {
			return last, sig, nil
		}
	}
	return last, signal.None, nil
}

// evalExpr is the argreduce.EvalFunc adapter: argument expressions never
// themselves carry a control-flow signal out of an argument list.
func (e *Evaluator) evalExpr(expr ast.Expr) (value.Value, error) {
	v, _, err := e.Eval(expr)
	return v, err
}
