package scenario

import (
	"fmt"

	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/value"
)

var pos = ast.NewPos("<scenario>", 0, 0)

// toValue converts a decoded Lit (or a nested map/array of Lit, per
// normalizeDecoded) into a value.Value.
func toValue(l *Lit) (value.Value, error) {
	if l == nil {
		return value.Null{}, nil
	}
	switch t := l.v.(type) {
	case nil:
		return value.Null{}, nil
	case string:
		return value.Str{S: t}, nil
	case bool:
		return value.Bool{B: t}, nil
	case int:
		return value.Int{N: int64(t)}, nil
	case int64:
		return value.Int{N: t}, nil
	case float64:
		return value.Float{N: t}, nil
	case []*Lit:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			v, err := toValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.Array{Elems: elems}, nil
	case map[string]*Lit:
		d := value.NewDict()
		for k, e := range t {
			v, err := toValue(e)
			if err != nil {
				return nil, err
			}
			d.Set(k, v)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("scenario literal has unsupported decoded type %T", t)
	}
}

// BuildBlock compiles a slice of Steps into a *ast.CodeBlock the evaluator
// can walk directly.
func BuildBlock(steps []Step) (*ast.CodeBlock, error) {
	nodes := make([]ast.Node, 0, len(steps))
	for _, s := range steps {
		n, err := buildStep(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return &ast.CodeBlock{Statements: nodes}, nil
}

func buildStep(s Step) (ast.Node, error) {
	switch {
	case s.Continue:
		return &ast.Continue{}, nil
	case s.Break:
		return &ast.Break{}, nil
	case s.Assign != "":
		v, err := buildExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Name: s.Assign, Value: v}, nil
	case s.PlusOf != "":
		v, err := buildExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &ast.PlusAssignment{Name: s.PlusOf, Value: v}, nil
	case s.Call != nil:
		return buildCall(s.Call)
	case s.Method != nil:
		return buildMethod(s.Method)
	case len(s.If) > 0:
		return buildIf(s.If, s.Else)
	case s.Foreach != nil:
		return buildForeach(s.Foreach)
	default:
		return nil, fmt.Errorf("scenario step has no recognized action: %s", s)
	}
}

func buildIf(clauses []IfClauseStep, elseSteps []Step) (ast.Node, error) {
	out := &ast.If{}
	for _, c := range clauses {
		cond, err := buildExpr(c.Cond)
		if err != nil {
			return nil, err
		}
		block, err := BuildBlock(c.Then)
		if err != nil {
			return nil, err
		}
		out.Clauses = append(out.Clauses, ast.IfClause{Cond: cond, Block: block})
	}
	if elseSteps != nil {
		block, err := BuildBlock(elseSteps)
		if err != nil {
			return nil, err
		}
		out.Else = block
	}
	return out, nil
}

func buildForeach(f *ForeachStep) (ast.Node, error) {
	items, err := buildExpr(f.Items)
	if err != nil {
		return nil, err
	}
	body, err := BuildBlock(f.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Foreach{Vars: f.Vars, Items: items, Block: body}, nil
}

func buildCall(c *CallExpr) (*ast.Function, error) {
	args, err := buildArgs(c.Args, c.Kwargs)
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: c.Func, Args: args}, nil
}

func buildMethod(m *MethodExpr) (*ast.Method, error) {
	recv, err := buildExpr(m.Recv)
	if err != nil {
		return nil, err
	}
	args, err := buildArgs(m.Args, m.Kwargs)
	if err != nil {
		return nil, err
	}
	return &ast.Method{Receiver: recv, Name: m.Name, Args: args}, nil
}

func buildArgs(posExprs []*Expr, kwExprs map[string]*Expr) (*ast.ArgumentNode, error) {
	positional := make([]ast.Expr, 0, len(posExprs))
	for _, e := range posExprs {
		v, err := buildExpr(e)
		if err != nil {
			return nil, err
		}
		positional = append(positional, v)
	}
	keywords := make([]ast.KeywordArg, 0, len(kwExprs))
	for name, e := range kwExprs {
		v, err := buildExpr(e)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, ast.KeywordArg{Key: &ast.Id{Name: name}, Value: v})
	}
	return ast.NewArgumentNode(pos, positional, keywords, false), nil
}

var compareOps = map[string]ast.CompareType{
	"==": ast.CmpEq, "!=": ast.CmpNe, "<": ast.CmpLt, "<=": ast.CmpLe,
	">": ast.CmpGt, ">=": ast.CmpGe, "in": ast.CmpIn, "not_in": ast.CmpNotIn,
}

var arithOps = map[string]ast.ArithOp{
	"+": ast.ArithAdd, "-": ast.ArithSub, "*": ast.ArithMul, "/": ast.ArithDiv, "%": ast.ArithMod,
}

func buildExpr(e *Expr) (ast.Expr, error) {
	if e == nil {
		return &ast.Empty{}, nil
	}
	switch {
	case e.Lit != nil:
		return buildLitExpr(e.Lit)
	case e.Var != "":
		return &ast.Id{Name: e.Var}, nil
	case e.Array != nil:
		args, err := buildArgs(e.Array, nil)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLit{Args: args}, nil
	case e.Dict != nil:
		keywords := make([]ast.KeywordArg, 0, len(e.Dict))
		for k, v := range e.Dict {
			ve, err := buildExpr(v)
			if err != nil {
				return nil, err
			}
			keywords = append(keywords, ast.KeywordArg{Key: &ast.StringLit{Value: k}, Value: ve})
		}
		return &ast.DictLit{Args: ast.NewArgumentNode(pos, nil, keywords, false)}, nil
	case e.Call != nil:
		return buildCall(e.Call)
	case e.Method != nil:
		return buildMethod(e.Method)
	case e.Compare != nil:
		ct, ok := compareOps[e.Compare.Op]
		if !ok {
			return nil, fmt.Errorf("unknown comparison operator %q", e.Compare.Op)
		}
		l, err := buildExpr(e.Compare.Left)
		if err != nil {
			return nil, err
		}
		r, err := buildExpr(e.Compare.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Left: l, Right: r, CType: ct}, nil
	case e.Arith != nil:
		op, ok := arithOps[e.Arith.Op]
		if !ok {
			return nil, fmt.Errorf("unknown arithmetic operator %q", e.Arith.Op)
		}
		l, err := buildExpr(e.Arith.Left)
		if err != nil {
			return nil, err
		}
		r, err := buildExpr(e.Arith.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Arithmetic{Left: l, Right: r, Op: op}, nil
	case len(e.And) == 2:
		l, err := buildExpr(e.And[0])
		if err != nil {
			return nil, err
		}
		r, err := buildExpr(e.And[1])
		if err != nil {
			return nil, err
		}
		return &ast.And{Left: l, Right: r}, nil
	case len(e.Or) == 2:
		l, err := buildExpr(e.Or[0])
		if err != nil {
			return nil, err
		}
		r, err := buildExpr(e.Or[1])
		if err != nil {
			return nil, err
		}
		return &ast.Or{Left: l, Right: r}, nil
	case e.Not != nil:
		inner, err := buildExpr(e.Not)
		if err != nil {
			return nil, err
		}
		return &ast.Not{Expr: inner}, nil
	case e.Index != nil:
		recv, err := buildExpr(e.Index.Recv)
		if err != nil {
			return nil, err
		}
		idx, err := buildExpr(e.Index.Index)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Receiver: recv, Index: idx}, nil
	case e.Ternary != nil:
		cond, err := buildExpr(e.Ternary.Cond)
		if err != nil {
			return nil, err
		}
		then, err := buildExpr(e.Ternary.Then)
		if err != nil {
			return nil, err
		}
		els, err := buildExpr(e.Ternary.Else)
		if err != nil {
			return nil, err
		}
		return &ast.Ternary{Cond: cond, Then: then, Else: els}, nil
	case e.Format != "":
		return &ast.FormatString{Template: e.Format}, nil
	default:
		return nil, fmt.Errorf("scenario expression has no recognized shape")
	}
}

func buildLitExpr(l *Lit) (ast.Expr, error) {
	switch t := l.v.(type) {
	case nil:
		return &ast.Empty{}, nil
	case string:
		return &ast.StringLit{Value: t}, nil
	case bool:
		return &ast.BooleanLit{Value: t}, nil
	case int:
		return &ast.NumberLit{Int: int64(t)}, nil
	case int64:
		return &ast.NumberLit{Int: t}, nil
	case float64:
		return &ast.NumberLit{IsFloat: true, Float: t}, nil
	default:
		return nil, fmt.Errorf("scenario literal expression has unsupported type %T", t)
	}
}
