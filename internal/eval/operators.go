package eval

import (
	"strings"

	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/signal"
	"github.com/bcl-lang/interp/internal/value"
)

func (e *Evaluator) evalArithmetic(n *ast.Arithmetic) (value.Value, signal.Signal, error) {
	l, _, err := e.Eval(n.Left)
	if err != nil {
		return nil, signal.None, err
	}
	r, _, err := e.Eval(n.Right)
	if err != nil {
		return nil, signal.None, err
	}
	switch n.Op {
	case ast.ArithAdd:
		return e.add(l, r)
	case ast.ArithSub:
		return intOnly(l, r, func(a, b int64) int64 { return a - b })
	case ast.ArithMul:
		return intOnly(l, r, func(a, b int64) int64 { return a * b })
	case ast.ArithMod:
		li, lok := l.(value.Int)
		ri, rok := r.(value.Int)
		if !lok || !rok {
			return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "modulo requires two ints, got %s and %s", l.Kind(), r.Kind())
		}
		if ri.N == 0 {
			return nil, signal.None, errors.NewInvalidCode(errors.VAL001, "modulo by zero")
		}
		return value.Int{N: floorMod(li.N, ri.N)}, signal.None, nil
	case ast.ArithDiv:
		return e.div(l, r)
	default:
		return nil, signal.None, errors.NewInterpreterException("", "unknown arithmetic operator")
	}
}

func (e *Evaluator) add(l, r value.Value) (value.Value, signal.Signal, error) {
	switch lv := l.(type) {
	case value.Int:
		rv, ok := r.(value.Int)
		if !ok {
			return nil, signal.None, addTypeErr(l, r)
		}
		return value.Int{N: lv.N + rv.N}, signal.None, nil
	case value.Float:
		rv, ok := r.(value.Float)
		if !ok {
			return nil, signal.None, addTypeErr(l, r)
		}
		return value.Float{N: lv.N + rv.N}, signal.None, nil
	case value.Str:
		rv, ok := r.(value.Str)
		if !ok {
			return nil, signal.None, addTypeErr(l, r)
		}
		return value.Str{S: lv.S + rv.S}, signal.None, nil
	case value.Array:
		if rv, ok := r.(value.Array); ok {
			out := append(append([]value.Value{}, lv.Elems...), rv.Elems...)
			return value.Array{Elems: out}, signal.None, nil
		}
		out := append(append([]value.Value{}, lv.Elems...), r)
		return value.Array{Elems: out}, signal.None, nil
	case *value.Dict:
		rv, ok := r.(*value.Dict)
		if !ok {
			return nil, signal.None, addTypeErr(l, r)
		}
		return lv.Merge(rv), signal.None, nil
	default:
		return nil, signal.None, addTypeErr(l, r)
	}
}

func addTypeErr(l, r value.Value) error {
	return errors.NewInvalidCode(errors.VAL002, "cannot add %s and %s", l.Kind(), r.Kind())
}

func intOnly(l, r value.Value, op func(a, b int64) int64) (value.Value, signal.Signal, error) {
	li, lok := l.(value.Int)
	ri, rok := r.(value.Int)
	if !lok || !rok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "operation requires two ints, got %s and %s", l.Kind(), r.Kind())
	}
	return value.Int{N: op(li.N, ri.N)}, signal.None, nil
}

func (e *Evaluator) div(l, r value.Value) (value.Value, signal.Signal, error) {
	if li, ok := l.(value.Int); ok {
		ri, ok := r.(value.Int)
		if !ok {
			return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "cannot divide %s by %s", l.Kind(), r.Kind())
		}
		if ri.N == 0 {
			return nil, signal.None, errors.NewInvalidCode(errors.VAL001, "division by zero")
		}
		return value.Int{N: floorDiv(li.N, ri.N)}, signal.None, nil
	}
	if ls, ok := l.(value.Str); ok {
		rs, ok := r.(value.Str)
		if !ok {
			return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "cannot divide %s by %s", l.Kind(), r.Kind())
		}
		e.Policy.FeatureNew(e.Subproject, "string / string path join", "0.49.0")
		return value.Str{S: pathJoin(ls.S, rs.S)}, signal.None, nil
	}
	return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "cannot divide %s by %s", l.Kind(), r.Kind())
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

func pathJoin(a, b string) string {
	a = strings.ReplaceAll(a, "\\", "/")
	b = strings.ReplaceAll(b, "\\", "/")
	a = strings.TrimRight(a, "/")
	b = strings.TrimLeft(b, "/")
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "/" + b
}

func (e *Evaluator) evalUMinus(n *ast.UMinus) (value.Value, signal.Signal, error) {
	v, _, err := e.Eval(n.Expr)
	if err != nil {
		return nil, signal.None, err
	}
	i, ok := v.(value.Int)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "unary minus requires an int, got %s", v.Kind())
	}
	return value.Int{N: -i.N}, signal.None, nil
}

func (e *Evaluator) evalNot(n *ast.Not) (value.Value, signal.Signal, error) {
	v, _, err := e.Eval(n.Expr)
	if err != nil {
		return nil, signal.None, err
	}
	if _, ok := v.(value.Disabler); ok {
		return v, signal.None, nil
	}
	b, ok := v.(value.Bool)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "'not' requires a bool, got %s", v.Kind())
	}
	return value.Bool{B: !b.B}, signal.None, nil
}

func (e *Evaluator) evalAnd(n *ast.And) (value.Value, signal.Signal, error) {
	l, _, err := e.Eval(n.Left)
	if err != nil {
		return nil, signal.None, err
	}
	if _, ok := l.(value.Disabler); ok {
		return l, signal.None, nil
	}
	lb, ok := l.(value.Bool)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "'and' requires a bool, got %s", l.Kind())
	}
	if !lb.B {
		return value.Bool{B: false}, signal.None, nil
	}
	r, _, err := e.Eval(n.Right)
	if err != nil {
		return nil, signal.None, err
	}
	if _, ok := r.(value.Disabler); ok {
		return r, signal.None, nil
	}
	rb, ok := r.(value.Bool)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "'and' requires a bool, got %s", r.Kind())
	}
	return value.Bool{B: rb.B}, signal.None, nil
}

func (e *Evaluator) evalOr(n *ast.Or) (value.Value, signal.Signal, error) {
	l, _, err := e.Eval(n.Left)
	if err != nil {
		return nil, signal.None, err
	}
	if _, ok := l.(value.Disabler); ok {
		return l, signal.None, nil
	}
	lb, ok := l.(value.Bool)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "'or' requires a bool, got %s", l.Kind())
	}
	if lb.B {
		return value.Bool{B: true}, signal.None, nil
	}
	r, _, err := e.Eval(n.Right)
	if err != nil {
		return nil, signal.None, err
	}
	if _, ok := r.(value.Disabler); ok {
		return r, signal.None, nil
	}
	rb, ok := r.(value.Bool)
	if !ok {
		return nil, signal.None, errors.NewInvalidCode(errors.VAL006, "'or' requires a bool, got %s", r.Kind())
	}
	return value.Bool{B: rb.B}, signal.None, nil
}

func (e *Evaluator) evalComparison(n *ast.Comparison) (value.Value, signal.Signal, error) {
	l, _, err := e.Eval(n.Left)
	if err != nil {
		return nil, signal.None, err
	}
	r, _, err := e.Eval(n.Right)
	if err != nil {
		return nil, signal.None, err
	}
	switch n.CType {
	case ast.CmpEq, ast.CmpNe:
		if !value.SameVariant(l, r) && e.Warn != nil {
			e.Warn("comparing values of different types (%s, %s) is deprecated and always returns false", l.Kind(), r.Kind())
		}
		eq := value.Equal(l, r)
		if n.CType == ast.CmpNe {
			eq = !eq
		}
		return value.Bool{B: eq}, signal.None, nil

	case ast.CmpLt, ast.CmpLe, ast.CmpGt, ast.CmpGe:
		cmp, ok := value.CompareOrder(l, r)
		if !ok {
			return nil, signal.None, errors.NewInterpreterException(errors.VAL003, "cannot order-compare %s and %s", l.Kind(), r.Kind())
		}
		var b bool
		switch n.CType {
		case ast.CmpLt:
			b = cmp < 0
		case ast.CmpLe:
			b = cmp <= 0
		case ast.CmpGt:
			b = cmp > 0
		case ast.CmpGe:
			b = cmp >= 0
		}
		return value.Bool{B: b}, signal.None, nil

	case ast.CmpIn, ast.CmpNotIn:
		if !value.IsElementary(l) {
			if _, ok := l.(value.HostObject); !ok {
				return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "left side of 'in' must be string, int, float, or host object, got %s", l.Kind())
			}
		}
		var found bool
		switch rv := r.(type) {
		case value.Array:
			for _, el := range rv.Elems {
				if value.Equal(el, l) {
					found = true
					break
				}
			}
		case *value.Dict:
			if s, ok := l.(value.Str); ok {
				_, found = rv.Get(s.S)
			}
		default:
			return nil, signal.None, errors.NewInvalidCode(errors.VAL002, "right side of 'in' must be array or dict, got %s", r.Kind())
		}
		if n.CType == ast.CmpNotIn {
			found = !found
		}
		return value.Bool{B: found}, signal.None, nil

	default:
		return nil, signal.None, errors.NewInterpreterException("", "unknown comparison operator")
	}
}

func (e *Evaluator) evalIndex(n *ast.Index) (value.Value, signal.Signal, error) {
	recv, _, err := e.Eval(n.Receiver)
	if err != nil {
		return nil, signal.None, err
	}
	idx, _, err := e.Eval(n.Index)
	if err != nil {
		return nil, signal.None, err
	}
	switch r := recv.(type) {
	case value.Array:
		i, ok := idx.(value.Int)
		if !ok {
			return nil, signal.None, errors.NewInvalidArguments(errors.VAL005, "array index must be an int, got %s", idx.Kind())
		}
		ix := int(i.N)
		if ix < 0 {
			ix += len(r.Elems)
		}
		if ix < 0 || ix >= len(r.Elems) {
			return nil, signal.None, errors.NewInvalidArguments(errors.VAL005, "array index %d out of bounds (length %d)", i.N, len(r.Elems))
		}
		return r.Elems[ix], signal.None, nil

	case *value.Dict:
		s, ok := idx.(value.Str)
		if !ok {
			return nil, signal.None, errors.NewInvalidArguments(errors.VAL004, "dict index must be a string, got %s", idx.Kind())
		}
		v, ok := r.Get(s.S)
		if !ok {
			return nil, signal.None, errors.NewInvalidArguments(errors.VAL005, "dict has no key %q", s.S)
		}
		return v, signal.None, nil

	case value.Range:
		i, ok := idx.(value.Int)
		if !ok {
			return nil, signal.None, errors.NewInvalidArguments(errors.VAL005, "range index must be an int, got %s", idx.Kind())
		}
		at, ok := r.At(int(i.N))
		if !ok {
			return nil, signal.None, errors.NewInvalidArguments(errors.VAL005, "range index %d out of bounds", i.N)
		}
		return value.Int{N: at}, signal.None, nil

	default:
		return nil, signal.None, errors.NewInvalidArguments(errors.VAL005, "%s does not support indexing", recv.Kind())
	}
}

// plusCombine implements spec §4.7's `+=` rules. Float is deliberately
// absent: spec.md's Open Questions note the original's is_assignable check
// lists float as assignable but the `+=` dispatch itself has no Float
// branch, and this implementation preserves that (an InvalidArguments
// error) rather than inventing float += semantics.
func plusCombine(cur, rhs value.Value) (value.Value, error) {
	switch c := cur.(type) {
	case value.Str:
		r, ok := rhs.(value.Str)
		if !ok {
			return nil, errors.NewInvalidArguments(errors.VAL002, "cannot += %s to a string", rhs.Kind())
		}
		return value.Str{S: c.S + r.S}, nil
	case value.Int:
		r, ok := rhs.(value.Int)
		if !ok {
			return nil, errors.NewInvalidArguments(errors.VAL002, "cannot += %s to an int", rhs.Kind())
		}
		return value.Int{N: c.N + r.N}, nil
	case value.Array:
		if r, ok := rhs.(value.Array); ok {
			out := append(append([]value.Value{}, c.Elems...), r.Elems...)
			return value.Array{Elems: out}, nil
		}
		out := append(append([]value.Value{}, c.Elems...), rhs)
		return value.Array{Elems: out}, nil
	case *value.Dict:
		r, ok := rhs.(*value.Dict)
		if !ok {
			return nil, errors.NewInvalidArguments(errors.VAL002, "cannot += %s to a dict", rhs.Kind())
		}
		return c.Merge(r), nil
	default:
		return nil, errors.NewInvalidArguments(errors.VAL002, "'+=' is not supported for %s", cur.Kind())
	}
}

// stripCompareOperator strips a leading comparison operator from a
// version_compare argument ("<1.0", ">=2.3") to recover the bare version
// used as the tentative target override (spec §3 Invariant 4, §4.2).
func stripCompareOperator(s string) string {
	for _, op := range []string{">=", "<=", "!=", "==", ">", "<"} {
		if strings.HasPrefix(s, op) {
			return strings.TrimSpace(s[len(op):])
		}
	}
	return s
}
