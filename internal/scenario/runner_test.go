package scenario

import "testing"

func TestRunExpectBindingsPass(t *testing.T) {
	s := &Spec{
		ID: "expect-pass",
		Steps: []Step{
			{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}}}},
			{Assign: "x", Value: &Expr{Lit: &Lit{v: int64(5)}}},
		},
		Expect: map[string]Lit{"x": {v: int64(5)}},
	}
	r := Run(s)
	if !r.Passed() {
		t.Fatalf("Run() failed: err=%v mismatch=%v", r.Err, r.Mismatch)
	}
}

func TestRunExpectBindingsMismatch(t *testing.T) {
	s := &Spec{
		ID: "expect-mismatch",
		Steps: []Step{
			{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}}}},
			{Assign: "x", Value: &Expr{Lit: &Lit{v: int64(5)}}},
		},
		Expect: map[string]Lit{"x": {v: int64(6)}},
	}
	r := Run(s)
	if r.Passed() {
		t.Fatal("Run() should report a mismatch for x")
	}
	if len(r.Mismatch) != 1 {
		t.Fatalf("Mismatch = %v, want 1 entry", r.Mismatch)
	}
}

func TestRunExpectUnboundVariable(t *testing.T) {
	s := &Spec{
		ID:     "expect-unbound",
		Steps:  []Step{{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}}}}},
		Expect: map[string]Lit{"never_set": {v: int64(1)}},
	}
	r := Run(s)
	if r.Passed() {
		t.Fatal("Run() should report never_set as not bound")
	}
}

func TestRunExpectErrorMatchesCode(t *testing.T) {
	s := &Spec{
		ID: "expect-error",
		Steps: []Step{
			{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}}}},
			{Assign: "x", Value: &Expr{Var: "undefined_var"}},
		},
		ExpectError: "ENV001",
	}
	r := Run(s)
	if !r.Passed() {
		t.Fatalf("Run() should match ENV001, got err=%v", r.Err)
	}
}

func TestRunExpectErrorWrongCodeFails(t *testing.T) {
	s := &Spec{
		ID: "expect-error-wrong",
		Steps: []Step{
			{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}}}},
			{Assign: "x", Value: &Expr{Var: "undefined_var"}},
		},
		ExpectError: "EVL001",
	}
	r := Run(s)
	if r.Passed() {
		t.Fatal("Run() should not match EVL001 when the actual error is ENV001")
	}
}

func TestRunPreSetVarsAreAssignedBeforeSteps(t *testing.T) {
	s := &Spec{
		ID:   "vars",
		Vars: map[string]Lit{"seed": {v: int64(10)}},
		Steps: []Step{
			{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}}}},
			{Assign: "doubled", Value: &Expr{Arith: &ArithExpr{
				Left: &Expr{Var: "seed"}, Op: "+", Right: &Expr{Var: "seed"},
			}}},
		},
		Expect: map[string]Lit{"doubled": {v: int64(20)}},
	}
	r := Run(s)
	if !r.Passed() {
		t.Fatalf("Run() failed: err=%v mismatch=%v", r.Err, r.Mismatch)
	}
}

func TestRunCollectsWarnings(t *testing.T) {
	s := &Spec{
		ID: "warnings",
		Steps: []Step{
			{Call: &CallExpr{Func: "project", Args: []*Expr{{Lit: &Lit{v: "demo"}}},
				Kwargs: map[string]*Expr{"version": {Lit: &Lit{v: "0.1.0"}}}}},
			{Assign: "greeting", Value: &Expr{Format: "hello"}},
		},
	}
	r := Run(s)
	if r.Err != nil {
		t.Fatal(r.Err)
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 feature-new warning for format strings below 0.58.0, got %d: %v", len(r.Warnings), r.Warnings)
	}
}

// Here `value` is a top-level statement rather than an assignment, which
// BuildBlock doesn't model directly — a step without assign/call/method/
// if/foreach/continue/break is rejected (see buildStep's default case), and
// this test checks that Run reports that build failure as its error.
func TestRunStandaloneValueStepUnsupportedByBuildStep(t *testing.T) {
	s := &Spec{
		ID:    "standalone-value",
		Steps: []Step{{Value: &Expr{Lit: &Lit{v: int64(1)}}}},
	}
	r := Run(s)
	if r.Err == nil {
		t.Fatal("a Step with only Value set (no assign/call/etc) should fail to build")
	}
}
