package eval

import (
	"testing"

	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

func TestRunEmptySourceIsEVL005(t *testing.T) {
	e, _ := newTestEvaluator()
	err := Run(e, block())
	got, ok := errors.As(err)
	if !ok || got.Code != errors.EVL005 {
		t.Fatalf("error = %v, want EVL005", err)
	}
	if err := Run(e, nil); err == nil {
		t.Fatal("Run(nil) should also be EVL005")
	}
}

func TestRunFirstStatementMustBeProject(t *testing.T) {
	e, _ := newTestEvaluator()
	n := block(&ast.Function{Name: "not_project", Args: ast.NewArgumentNode(ast.Pos{}, nil, nil, false)})
	err := Run(e, n)
	got, ok := errors.As(err)
	if !ok || got.Code != errors.EVL004 {
		t.Fatalf("error = %v, want EVL004", err)
	}
}

func TestRunSucceedsWithProjectFirst(t *testing.T) {
	e, _ := newTestEvaluator()
	e.Dispatch.Functions.Register(&dispatch.Function{
		Name: "project",
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) { return value.Null{}, nil },
	})
	n := block(&ast.Function{Name: "project", Args: ast.NewArgumentNode(ast.Pos{}, []ast.Expr{strLit("demo")}, nil, false)})
	if err := Run(e, n); err != nil {
		t.Fatal(err)
	}
}

func TestRunSwallowsTopLevelSubdirDone(t *testing.T) {
	e, _ := newTestEvaluator()
	e.Dispatch.Functions.Register(&dispatch.Function{
		Name: "project",
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) { return value.Null{}, nil },
	})
	e.Dispatch.Functions.Register(&dispatch.Function{
		Name: "subdir_done",
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) { return value.Null{}, nil },
	})
	n := block(
		&ast.Function{Name: "project", Args: ast.NewArgumentNode(ast.Pos{}, []ast.Expr{strLit("demo")}, nil, false)},
		&ast.Function{Name: "subdir_done", Args: ast.NewArgumentNode(ast.Pos{}, nil, nil, false)},
	)
	if err := Run(e, n); err != nil {
		t.Fatal(err)
	}
}
