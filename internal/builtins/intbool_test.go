package builtins

import (
	"testing"

	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/value"
)

func TestIntToStringAndParity(t *testing.T) {
	m := dispatch.NewMethodTables()
	registerIntMethods(m)

	v, err := callMethod(t, m, value.KindInt, "to_string", []value.Value{value.Int{N: 7}}, nil)
	if err != nil || v.(value.Str).S != "7" {
		t.Fatalf("to_string() = %v, %v", v, err)
	}

	v, err = callMethod(t, m, value.KindInt, "is_even", []value.Value{value.Int{N: 4}}, nil)
	if err != nil || !v.(value.Bool).B {
		t.Fatalf("is_even(4) = %v, %v, want true", v, err)
	}

	v, err = callMethod(t, m, value.KindInt, "is_odd", []value.Value{value.Int{N: 4}}, nil)
	if err != nil || v.(value.Bool).B {
		t.Fatalf("is_odd(4) = %v, %v, want false", v, err)
	}
}

func TestBoolToStringAndToInt(t *testing.T) {
	m := dispatch.NewMethodTables()
	registerBoolMethods(m)

	v, err := callMethod(t, m, value.KindBool, "to_string", []value.Value{value.Bool{B: true}}, nil)
	if err != nil || v.(value.Str).S != "true" {
		t.Fatalf("to_string() = %v, %v", v, err)
	}

	v, err = callMethod(t, m, value.KindBool, "to_int", []value.Value{value.Bool{B: true}}, nil)
	if err != nil || v.(value.Int).N != 1 {
		t.Fatalf("to_int(true) = %v, %v, want 1", v, err)
	}
	v, err = callMethod(t, m, value.KindBool, "to_int", []value.Value{value.Bool{B: false}}, nil)
	if err != nil || v.(value.Int).N != 0 {
		t.Fatalf("to_int(false) = %v, %v, want 0", v, err)
	}
}

func TestBoolToStringCustomTrueFalse(t *testing.T) {
	m := dispatch.NewMethodTables()
	registerBoolMethods(m)

	v, err := callMethod(t, m, value.KindBool, "to_string", []value.Value{
		value.Bool{B: true}, value.Str{S: "yes"}, value.Str{S: "no"},
	}, nil)
	if err != nil || v.(value.Str).S != "yes" {
		t.Fatalf("to_string(yes,no) on true = %v, %v, want yes", v, err)
	}

	v, err = callMethod(t, m, value.KindBool, "to_string", []value.Value{
		value.Bool{B: false}, value.Str{S: "yes"}, value.Str{S: "no"},
	}, nil)
	if err != nil || v.(value.Str).S != "no" {
		t.Fatalf("to_string(yes,no) on false = %v, %v, want no", v, err)
	}

	_, err = callMethod(t, m, value.KindBool, "to_string", []value.Value{
		value.Bool{B: true}, value.Str{S: "only-one"},
	}, nil)
	if err == nil {
		t.Fatal("to_string() with exactly one argument should fail")
	}
}
