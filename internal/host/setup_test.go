package host

import (
	"bytes"
	"testing"

	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/value"
)

func TestNewWiresProjectAndExampleHostTypes(t *testing.T) {
	var out bytes.Buffer
	interp := New(&out, "")

	n := &ast.Function{Name: "project", Args: ast.NewArgumentNode(ast.Pos{},
		[]ast.Expr{&ast.StringLit{Value: "demo"}},
		[]ast.KeywordArg{{Key: &ast.Id{Name: "version"}, Value: &ast.StringLit{Value: "1.0.0"}}},
		false)}
	if _, _, err := interp.Eval.Eval(n); err != nil {
		t.Fatal(err)
	}
	target, ok := interp.Eval.Policy.TargetFor("")
	if !ok || target != "1.0.0" {
		t.Fatalf("TargetFor() = (%q, %v), want (1.0.0, true)", target, ok)
	}
}

func TestNewDependencyFunctionWired(t *testing.T) {
	var out bytes.Buffer
	interp := New(&out, "")

	n := &ast.Function{Name: "dependency", Args: ast.NewArgumentNode(ast.Pos{},
		[]ast.Expr{&ast.StringLit{Value: "zlib"}}, nil, false)}
	v, _, err := interp.Eval.Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	dep, ok := v.(*Dependency)
	if !ok || dep.Identity() != "dependency:zlib" {
		t.Fatalf("dependency('zlib') = %v, want *Dependency{zlib}", v)
	}
}

func TestNewDependencyNotRequiredReturnsNotFoundDependency(t *testing.T) {
	var out bytes.Buffer
	interp := New(&out, "")

	n := &ast.Function{Name: "dependency", Args: ast.NewArgumentNode(ast.Pos{},
		[]ast.Expr{&ast.StringLit{Value: "nope"}},
		[]ast.KeywordArg{{Key: &ast.Id{Name: "required"}, Value: &ast.BooleanLit{Value: false}}},
		false)}
	v, _, err := interp.Eval.Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	dep, ok := v.(*Dependency)
	if !ok {
		t.Fatalf("dependency(..., required: false) = %T, want *Dependency", v)
	}
	m, _ := dep.Method("found")
	found, _ := m.Fn(nil, nil)
	if found.(value.Bool).B {
		t.Fatal("not-required, not-found dependency should report found() == false")
	}
}

func TestNewFileHandleFunctionWired(t *testing.T) {
	var out bytes.Buffer
	interp := New(&out, "")
	n := &ast.Function{Name: "file_handle", Args: ast.NewArgumentNode(ast.Pos{},
		[]ast.Expr{&ast.StringLit{Value: "a.c"}}, nil, false)}
	v, _, err := interp.Eval.Eval(n)
	if err != nil {
		t.Fatal(err)
	}
	if v.(value.File).Name != "a.c" {
		t.Fatalf("file_handle('a.c') = %v, want File{Name: a.c}", v)
	}
}

func TestNewFSFunctionsRequireGrant(t *testing.T) {
	var out bytes.Buffer
	interp := New(&out, "")
	n := &ast.Function{Name: "read_file", Args: ast.NewArgumentNode(ast.Pos{},
		[]ast.Expr{&ast.StringLit{Value: "x"}}, nil, false)}
	_, _, err := interp.Eval.Eval(n)
	if err == nil {
		t.Fatal("read_file should require the FS capability by default")
	}
}
