package argreduce

import (
	"testing"

	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

var pos = ast.NewPos("<test>", 0, 0)

func litEval(n ast.Expr) (value.Value, error) {
	switch e := n.(type) {
	case *ast.StringLit:
		return value.Str{S: e.Value}, nil
	case *ast.NumberLit:
		return value.Int{N: e.Int}, nil
	default:
		return nil, errors.NewInterpreterException("", "unsupported test node %T", n)
	}
}

func TestReduceNilNode(t *testing.T) {
	r, err := Reduce(nil, litEval, DefaultKeyResolver)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Positional) != 0 || len(r.Keywords) != 0 {
		t.Fatalf("Reduce(nil) = %+v, want empty", r)
	}
}

func TestReducePositionalAndKeywords(t *testing.T) {
	node := ast.NewArgumentNode(pos,
		[]ast.Expr{&ast.StringLit{Value: "a"}, &ast.NumberLit{Int: 1}},
		[]ast.KeywordArg{{Key: &ast.Id{Name: "version"}, Value: &ast.StringLit{Value: "1.0"}}},
		false)

	r, err := Reduce(node, litEval, DefaultKeyResolver)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Positional) != 2 || r.Positional[0].(value.Str).S != "a" || r.Positional[1].(value.Int).N != 1 {
		t.Fatalf("Positional = %+v", r.Positional)
	}
	if r.Keywords["version"].(value.Str).S != "1.0" {
		t.Fatalf("Keywords[version] = %v", r.Keywords["version"])
	}
}

func TestReduceIncorrectOrderRejected(t *testing.T) {
	node := ast.NewArgumentNode(pos, nil, nil, true)
	_, err := Reduce(node, litEval, DefaultKeyResolver)
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ARG001 {
		t.Fatalf("error = %v, want ARG001", err)
	}
}

func TestReduceDuplicateKeywordRejected(t *testing.T) {
	node := ast.NewArgumentNode(pos, nil, []ast.KeywordArg{
		{Key: &ast.Id{Name: "version"}, Value: &ast.StringLit{Value: "1"}},
		{Key: &ast.Id{Name: "version"}, Value: &ast.StringLit{Value: "2"}},
	}, false)
	_, err := Reduce(node, litEval, DefaultKeyResolver)
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ARG002 {
		t.Fatalf("error = %v, want ARG002", err)
	}
}

func TestReduceKwargsExpansion(t *testing.T) {
	d := value.NewDict()
	d.Set("license", value.Str{S: "MIT"})

	// Simulate `kwargs: some_dict` by making the Eval func return the dict
	// for a sentinel node.
	evalWithDict := func(n ast.Expr) (value.Value, error) {
		if id, ok := n.(*ast.Id); ok && id.Name == "$dict" {
			return d, nil
		}
		return litEval(n)
	}

	node := ast.NewArgumentNode(pos, nil, []ast.KeywordArg{
		{Key: &ast.Id{Name: "kwargs"}, Value: &ast.Id{Name: "$dict"}},
	}, false)

	r, err := Reduce(node, evalWithDict, DefaultKeyResolver)
	if err != nil {
		t.Fatal(err)
	}
	if _, stillPresent := r.Keywords["kwargs"]; stillPresent {
		t.Fatal("kwargs key should have been expanded and removed")
	}
	if r.Keywords["license"].(value.Str).S != "MIT" {
		t.Fatalf("Keywords[license] = %v, want MIT", r.Keywords["license"])
	}
}

func TestReduceKwargsExpansionConflict(t *testing.T) {
	d := value.NewDict()
	d.Set("version", value.Str{S: "2.0"})
	evalWithDict := func(n ast.Expr) (value.Value, error) {
		if id, ok := n.(*ast.Id); ok && id.Name == "$dict" {
			return d, nil
		}
		return litEval(n)
	}

	node := ast.NewArgumentNode(pos, nil, []ast.KeywordArg{
		{Key: &ast.Id{Name: "version"}, Value: &ast.StringLit{Value: "1.0"}},
		{Key: &ast.Id{Name: "kwargs"}, Value: &ast.Id{Name: "$dict"}},
	}, false)

	_, err := Reduce(node, evalWithDict, DefaultKeyResolver)
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ARG003 {
		t.Fatalf("error = %v, want ARG003", err)
	}
}

func TestReduceKeyOrderPreservedAndExpansionAppendsAtEnd(t *testing.T) {
	d := value.NewDict()
	d.Set("b", value.Str{S: "fromkwargs"})

	evalWithDict := func(n ast.Expr) (value.Value, error) {
		if id, ok := n.(*ast.Id); ok && id.Name == "$dict" {
			return d, nil
		}
		return litEval(n)
	}

	node := ast.NewArgumentNode(pos, nil, []ast.KeywordArg{
		{Key: &ast.Id{Name: "z"}, Value: &ast.StringLit{Value: "1"}},
		{Key: &ast.Id{Name: "kwargs"}, Value: &ast.Id{Name: "$dict"}},
		{Key: &ast.Id{Name: "a"}, Value: &ast.StringLit{Value: "2"}},
	}, false)

	r, err := Reduce(node, evalWithDict, DefaultKeyResolver)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "b"}
	if len(r.KeyOrder) != len(want) {
		t.Fatalf("KeyOrder = %v, want %v", r.KeyOrder, want)
	}
	for i, k := range want {
		if r.KeyOrder[i] != k {
			t.Fatalf("KeyOrder = %v, want %v", r.KeyOrder, want)
		}
	}
}

func TestReduceCustomDuplicateKeyError(t *testing.T) {
	node := ast.NewArgumentNode(pos, nil, []ast.KeywordArg{
		{Key: &ast.Id{Name: "k"}, Value: &ast.StringLit{Value: "1"}},
		{Key: &ast.Id{Name: "k"}, Value: &ast.StringLit{Value: "2"}},
	}, false)

	sentinel := errors.NewInvalidCode("EVL003", "duplicate dict literal key %q", "k")
	_, err := Reduce(node, litEval, DefaultKeyResolver, func(name string) error {
		return errors.NewInvalidCode("EVL003", "duplicate dict literal key %q", name)
	})
	got, ok := errors.As(err)
	if !ok || got.Code != "EVL003" {
		t.Fatalf("error = %v, want EVL003 (like %v)", err, sentinel)
	}
}

func TestDictKeyResolverRequiresString(t *testing.T) {
	_, err := DictKeyResolver(&ast.NumberLit{Int: 1}, litEval)
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ARG002 {
		t.Fatalf("error = %v, want ARG002", err)
	}
}
