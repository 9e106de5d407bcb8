package builtins

import (
	"testing"

	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

func dottedCompare(a, b string) int {
	return 0
}

func callMethod(t *testing.T, m *dispatch.MethodTables, kind value.Kind, name string, pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	t.Helper()
	fn, ok := m.Lookup(kind, name)
	if !ok {
		t.Fatalf("method %s not registered for %v", name, kind)
	}
	shapedPos, shapedKw, err := dispatch.Validate(fn.Validator, pos, kw, dispatch.ValidateDeps{})
	if err != nil {
		return nil, err
	}
	return fn.Call(shapedPos, shapedKw)
}

func newStringMethods() *dispatch.MethodTables {
	m := dispatch.NewMethodTables()
	registerStringMethods(m, dottedCompare)
	return m
}

func TestToUpperLower(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "to_upper", []value.Value{value.Str{S: "ab"}}, nil)
	if err != nil || v.(value.Str).S != "AB" {
		t.Fatalf("to_upper = %v, %v", v, err)
	}
	v, err = callMethod(t, m, value.KindString, "to_lower", []value.Value{value.Str{S: "AB"}}, nil)
	if err != nil || v.(value.Str).S != "ab" {
		t.Fatalf("to_lower = %v, %v", v, err)
	}
}

func TestStripDefaultAndArg(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "strip", []value.Value{value.Str{S: "  hi  "}}, nil)
	if err != nil || v.(value.Str).S != "hi" {
		t.Fatalf("strip() = %v, %v", v, err)
	}
	v, err = callMethod(t, m, value.KindString, "strip", []value.Value{value.Str{S: "xxhixx"}, value.Str{S: "x"}}, nil)
	if err != nil || v.(value.Str).S != "hi" {
		t.Fatalf("strip(x) = %v, %v", v, err)
	}
}

func TestContainsStartsEndsWith(t *testing.T) {
	m := newStringMethods()
	recv := value.Str{S: "hello"}
	v, _ := callMethod(t, m, value.KindString, "contains", []value.Value{recv, value.Str{S: "ell"}}, nil)
	if !v.(value.Bool).B {
		t.Fatal("contains(ell) should be true")
	}
	v, _ = callMethod(t, m, value.KindString, "startswith", []value.Value{recv, value.Str{S: "he"}}, nil)
	if !v.(value.Bool).B {
		t.Fatal("startswith(he) should be true")
	}
	v, _ = callMethod(t, m, value.KindString, "endswith", []value.Value{recv, value.Str{S: "lo"}}, nil)
	if !v.(value.Bool).B {
		t.Fatal("endswith(lo) should be true")
	}
}

func TestReplace(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "replace", []value.Value{
		value.Str{S: "a-b-c"}, value.Str{S: "-"}, value.Str{S: "_"},
	}, nil)
	if err != nil || v.(value.Str).S != "a_b_c" {
		t.Fatalf("replace = %v, %v", v, err)
	}
}

func TestSplitDefaultAndSep(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "split", []value.Value{value.Str{S: "a b  c"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	arr := v.(value.Array)
	if len(arr.Elems) != 3 {
		t.Fatalf("split() whitespace = %v, want 3 elems", arr)
	}

	v, err = callMethod(t, m, value.KindString, "split", []value.Value{value.Str{S: "a,b,c"}, value.Str{S: ","}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	arr = v.(value.Array)
	if len(arr.Elems) != 3 || arr.Elems[1].(value.Str).S != "b" {
		t.Fatalf("split(,) = %v, want [a b c]", arr)
	}
}

func TestToIntSuccessAndFailure(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "to_int", []value.Value{value.Str{S: " 42 "}}, nil)
	if err != nil || v.(value.Int).N != 42 {
		t.Fatalf("to_int(' 42 ') = %v, %v", v, err)
	}

	_, err = callMethod(t, m, value.KindString, "to_int", []value.Value{value.Str{S: "nope"}}, nil)
	if err == nil {
		t.Fatal("to_int('nope') should fail")
	}
	if e, ok := errors.As(err); !ok || e.Code != errors.VAL002 {
		t.Fatalf("to_int error = %v, want VAL002", err)
	}
}

func TestUnderscorify(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "underscorify", []value.Value{value.Str{S: "a-b.c"}}, nil)
	if err != nil || v.(value.Str).S != "a_b_c" {
		t.Fatalf("underscorify = %v, %v", v, err)
	}
}

func TestVersionCompareMethod(t *testing.T) {
	cmp := func(a, b string) int {
		if a == b {
			return 0
		}
		if a == "1.0" && b == "2.0" {
			return -1
		}
		return 1
	}
	m := dispatch.NewMethodTables()
	registerStringMethods(m, cmp)
	v, err := callMethod(t, m, value.KindString, "version_compare", []value.Value{
		value.Str{S: "1.0"}, value.Str{S: "<2.0"},
	}, nil)
	if err != nil || !v.(value.Bool).B {
		t.Fatalf("version_compare(1.0, <2.0) = %v, %v, want true", v, err)
	}
}

func TestFormatPositionalAndKeyword(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "format", []value.Value{
		value.Str{S: "@0@ and @name@"}, value.Str{S: "one"},
	}, map[string]value.Value{"name": value.Str{S: "two"}})
	if err != nil {
		t.Fatal(err)
	}
	if v.(value.Str).S != "one and two" {
		t.Fatalf("format() = %q, want %q", v.(value.Str).S, "one and two")
	}
}

func TestFormatUnknownTokenLeftAlone(t *testing.T) {
	m := newStringMethods()
	v, err := callMethod(t, m, value.KindString, "format", []value.Value{value.Str{S: "@missing@"}}, nil)
	if err != nil || v.(value.Str).S != "@missing@" {
		t.Fatalf("format() = %v, %v, want unchanged token", v, err)
	}
}

func TestJoin(t *testing.T) {
	m := newStringMethods()
	list := value.Array{Elems: []value.Value{value.Str{S: "a"}, value.Str{S: "b"}, value.Str{S: "c"}}}
	v, err := callMethod(t, m, value.KindString, "join", []value.Value{value.Str{S: "-"}, list}, nil)
	if err != nil || v.(value.Str).S != "a-b-c" {
		t.Fatalf("join = %v, %v, want a-b-c", v, err)
	}
}

func TestJoinRejectsNonStringElement(t *testing.T) {
	m := newStringMethods()
	list := value.Array{Elems: []value.Value{value.Str{S: "a"}, value.Int{N: 1}}}
	_, err := callMethod(t, m, value.KindString, "join", []value.Value{value.Str{S: "-"}, list}, nil)
	if err == nil {
		t.Fatal("join() with a non-string element should fail")
	}
	if e, ok := errors.As(err); !ok || e.Code != errors.TYP002 {
		t.Fatalf("join() error = %v, want TYP002", err)
	}
}

func TestSubstring(t *testing.T) {
	m := newStringMethods()
	recv := value.Str{S: "hello world"}

	v, err := callMethod(t, m, value.KindString, "substring", []value.Value{recv}, nil)
	if err != nil || v.(value.Str).S != "hello world" {
		t.Fatalf("substring() = %v, %v, want unchanged", v, err)
	}

	v, err = callMethod(t, m, value.KindString, "substring", []value.Value{recv, value.Int{N: 6}}, nil)
	if err != nil || v.(value.Str).S != "world" {
		t.Fatalf("substring(6) = %v, %v, want world", v, err)
	}

	v, err = callMethod(t, m, value.KindString, "substring", []value.Value{recv, value.Int{N: 0}, value.Int{N: 5}}, nil)
	if err != nil || v.(value.Str).S != "hello" {
		t.Fatalf("substring(0,5) = %v, %v, want hello", v, err)
	}

	v, err = callMethod(t, m, value.KindString, "substring", []value.Value{recv, value.Int{N: -5}}, nil)
	if err != nil || v.(value.Str).S != "world" {
		t.Fatalf("substring(-5) = %v, %v, want world", v, err)
	}
}

func TestEvalVersionConditionOperators(t *testing.T) {
	cmp := func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a < b:
			return -1
		default:
			return 1
		}
	}
	cases := []struct {
		target, cond string
		want         bool
	}{
		{"1.0", ">=1.0", true},
		{"1.0", "<=0.9", false},
		{"1.0", "!=1.0", false},
		{"1.0", ">0.9", true},
		{"1.0", "<0.9", false},
		{"1.0", "1.0", true},
	}
	for _, c := range cases {
		got := evalVersionCondition(cmp, c.target, c.cond)
		if got != c.want {
			t.Errorf("evalVersionCondition(%q, %q) = %v, want %v", c.target, c.cond, got, c.want)
		}
	}
}
