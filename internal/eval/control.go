package eval

import (
	"regexp"
	"strconv"

	"github.com/bcl-lang/interp/internal/argreduce"
	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/signal"
	"github.com/bcl-lang/interp/internal/srctext"
	"github.com/bcl-lang/interp/internal/value"
)

var formatVarRe = regexp.MustCompile(`@([^@]+)@`)

// evalIf implements spec §4.2's if/elif/else chain, including the
// tentative-target-version override: a condition that called
// VersionString.version_compare() pushes its parsed RHS as a transient
// target override for the duration of the clause it guards (cleared before
// every clause is tried, since only the clause that is actually taken may
// apply its override).
func (e *Evaluator) evalIf(n *ast.If) (value.Value, signal.Signal, error) {
	for _, clause := range n.Clauses {
		e.tentativeVer = ""
		cond, _, err := e.Eval(clause.Cond)
		if err != nil {
			return nil, signal.None, err
		}
		if _, ok := cond.(value.Disabler); ok {
			return cond, signal.None, nil
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "if condition must be a bool, got %s", cond.Kind())
		}
		if !b.B {
			continue
		}
		if e.tentativeVer != "" {
			e.Policy.PushTargetOverride(e.Subproject, e.tentativeVer)
			defer e.Policy.PopTargetOverride(e.Subproject)
		}
		return e.Eval(clause.Block)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return value.Null{}, signal.None, nil
}

// evalForeach implements spec §4.2: Array/Range bind exactly one loop
// variable, Dict binds exactly two (key, value) and iterates in
// SortedKeys() order. Continue ends the current iteration; Break ends the
// loop; SubdirDone propagates immediately without finishing the loop.
func (e *Evaluator) evalForeach(n *ast.Foreach) (value.Value, signal.Signal, error) {
	items, _, err := e.Eval(n.Items)
	if err != nil {
		return nil, signal.None, err
	}

	switch it := items.(type) {
	case value.Array:
		if len(n.Vars) != 1 {
			return nil, signal.None, errors.NewInvalidCode(errors.EVL001, "foreach over an array requires exactly one loop variable, got %d", len(n.Vars))
		}
		for _, el := range it.Elems {
			if err := e.Env.Assign(n.Vars[0], el); err != nil {
				return nil, signal.None, err
			}
			v, sig, err := e.Eval(n.Block)
			if err != nil {
				return nil, signal.None, err
			}
			if sig == signal.Break {
				return v, signal.None, nil
			}
			if sig == signal.SubdirDone {
				return v, sig, nil
			}
		}
		return value.Null{}, signal.None, nil

	case value.Range:
		if len(n.Vars) != 1 {
			return nil, signal.None, errors.NewInvalidCode(errors.EVL001, "foreach over a range requires exactly one loop variable, got %d", len(n.Vars))
		}
		for i := 0; i < it.Len(); i++ {
			at, _ := it.At(i)
			if err := e.Env.Assign(n.Vars[0], value.Int{N: at}); err != nil {
				return nil, signal.None, err
			}
			v, sig, err := e.Eval(n.Block)
			if err != nil {
				return nil, signal.None, err
			}
			if sig == signal.Break {
				return v, signal.None, nil
			}
			if sig == signal.SubdirDone {
				return v, sig, nil
			}
		}
		return value.Null{}, signal.None, nil

	case *value.Dict:
		if len(n.Vars) != 2 {
			return nil, signal.None, errors.NewInvalidCode(errors.EVL001, "foreach over a dict requires exactly two loop variables, got %d", len(n.Vars))
		}
		for _, k := range it.SortedKeys() {
			v, _ := it.Get(k)
			if err := e.Env.Assign(n.Vars[0], value.Str{S: k}); err != nil {
				return nil, signal.None, err
			}
			if err := e.Env.Assign(n.Vars[1], v); err != nil {
				return nil, signal.None, err
			}
			res, sig, err := e.Eval(n.Block)
			if err != nil {
				return nil, signal.None, err
			}
			if sig == signal.Break {
				return res, signal.None, nil
			}
			if sig == signal.SubdirDone {
				return res, sig, nil
			}
		}
		return value.Null{}, signal.None, nil

	default:
		return nil, signal.None, errors.NewInvalidCode(errors.VAL005, "foreach requires an array, range, or dict, got %s", items.Kind())
	}
}

func (e *Evaluator) evalTernary(n *ast.Ternary) (value.Value, signal.Signal, error) {
	cond, _, err := e.Eval(n.Cond)
	if err != nil {
		return nil, signal.None, err
	}
	if _, ok := cond.(value.Disabler); ok {
		return cond, signal.None, nil
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "ternary condition must be a bool, got %s", cond.Kind())
	}
	if b.B {
		return e.Eval(n.Then)
	}
	return e.Eval(n.Else)
}

// evalFormatString implements spec §4.2's `@NAME@` substitution, gated at
// "0.58.0". Each token must resolve to a variable of an elementary type
// that stringifies unambiguously (String, Integer, Float, Bool); anything
// else is EVL002.
func (e *Evaluator) evalFormatString(n *ast.FormatString) (value.Value, signal.Signal, error) {
	e.Policy.FeatureNew(e.Subproject, "format strings", "0.58.0")
	var outErr error
	out := formatVarRe.ReplaceAllStringFunc(n.Template, func(tok string) string {
		if outErr != nil {
			return tok
		}
		name := tok[1 : len(tok)-1]
		v, err := e.Env.Get(name)
		if err != nil {
			outErr = err
			return tok
		}
		switch t := v.(type) {
		case value.Str:
			return t.S
		case value.Int:
			return strconv.FormatInt(t.N, 10)
		case value.Float:
			return t.String()
		case value.Bool:
			return t.String()
		default:
			outErr = errors.NewInvalidCode(errors.EVL002, "format string variable %q must be string, int, float, or bool, got %s", name, v.Kind())
			return tok
		}
	})
	if outErr != nil {
		return nil, signal.None, outErr
	}
	// NFC-normalize the rendered text: the template's literal runs and any
	// substituted string values may mix precomposed and decomposed forms of
	// the same character, which must compare equal once formatted.
	return value.Str{S: srctext.Normalize(out)}, signal.None, nil
}

// evalArrayLit implements spec §4.1/§4.3: `[a, b, c]`. Keyword arguments
// are never valid inside an array literal.
func (e *Evaluator) evalArrayLit(n *ast.ArrayLit) (value.Value, signal.Signal, error) {
	if n.Args != nil && len(n.Args.Keywords) > 0 {
		return nil, signal.None, errors.NewInvalidCode(errors.EVL006, "array literal may not contain keyword arguments")
	}
	e.argDepth++
	reduced, err := argreduce.Reduce(n.Args, e.evalExpr, argreduce.DefaultKeyResolver)
	e.argDepth--
	if err != nil {
		return nil, signal.None, err
	}
	return value.Array{Elems: reduced.Positional}, signal.None, nil
}

// evalDictLit implements spec §4.1/§4.2/§4.3: `{'k': v, ...}`, gated at
// "0.47.0". Below target "0.53.0" keys must be plain string literals;
// at or above it, any expression evaluating to a String is accepted
// (argreduce.DictKeyResolver). Positional arguments are never valid inside
// a dict literal, and duplicate keys are rejected.
func (e *Evaluator) evalDictLit(n *ast.DictLit) (value.Value, signal.Signal, error) {
	e.Policy.FeatureNew(e.Subproject, "dict literal", "0.47.0")

	if n.Args != nil && len(n.Args.Positional) > 0 {
		return nil, signal.None, errors.NewInvalidCode(errors.EVL006, "dict literal may not contain positional arguments")
	}

	resolver := argreduce.KeyResolver(func(key ast.Expr, evalFn argreduce.EvalFunc) (string, error) {
		if _, ok := key.(*ast.StringLit); !ok {
			target, ok := e.Policy.TargetFor(e.Subproject)
			if !ok || e.Cmp(target, "0.53.0") < 0 {
				return "", errors.NewInvalidCode(errors.EVL006, "dict literal keys must be plain string literals below version 0.53.0")
			}
		}
		return argreduce.DictKeyResolver(key, evalFn)
	})
	duplicateKey := func(name string) error {
		return errors.NewInvalidCode(errors.EVL003, "duplicate dict literal key %q", name)
	}

	e.argDepth++
	reduced, err := argreduce.Reduce(n.Args, e.evalExpr, resolver, duplicateKey)
	e.argDepth--
	if err != nil {
		return nil, signal.None, err
	}

	d := value.NewDict()
	for _, name := range reduced.KeyOrder {
		d.Set(name, reduced.Keywords[name])
	}
	return d, signal.None, nil
}
