package env

import (
	"testing"

	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

func TestGetBuiltinsBeforeVariables(t *testing.T) {
	e := New()
	e.SetBuiltin("meson", value.Str{S: "builtin"})
	if err := e.Assign("x", value.Int{N: 1}); err != nil {
		t.Fatal(err)
	}

	v, err := e.Get("meson")
	if err != nil || v.(value.Str).S != "builtin" {
		t.Fatalf("Get(meson) = (%v, %v), want (builtin, nil)", v, err)
	}
	v, err = e.Get("x")
	if err != nil || v.(value.Int).N != 1 {
		t.Fatalf("Get(x) = (%v, %v), want (1, nil)", v, err)
	}
}

func TestGetUnknownNameIsENV001(t *testing.T) {
	e := New()
	_, err := e.Get("nope")
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ENV001 {
		t.Fatalf("Get(nope) error = %v, want ENV001", err)
	}
}

func TestAssignCannotShadowBuiltin(t *testing.T) {
	e := New()
	e.SetBuiltin("meson", value.Str{S: "builtin"})
	err := e.Assign("meson", value.Int{N: 1})
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ENV002 {
		t.Fatalf("Assign(meson) error = %v, want ENV002", err)
	}
}

func TestAssignInvalidIdentifier(t *testing.T) {
	e := New()
	err := e.Assign("1bad", value.Int{N: 1})
	got, ok := errors.As(err)
	if !ok || got.Code != errors.ENV003 {
		t.Fatalf("Assign(1bad) error = %v, want ENV003", err)
	}
}

func TestAssignDeepCopiesMutableHostObject(t *testing.T) {
	e := New()
	orig := &fakeMutableHost{tag: "orig"}
	if err := e.Assign("h", orig); err != nil {
		t.Fatal(err)
	}
	got, _ := e.Lookup("h")
	clone, ok := got.(*fakeMutableHost)
	if !ok {
		t.Fatalf("Lookup(h) = %T, want *fakeMutableHost", got)
	}
	if clone == orig {
		t.Fatal("Assign should have deep-copied the mutable host object")
	}
}

func TestLookupFound(t *testing.T) {
	e := New()
	_ = e.Assign("x", value.Int{N: 42})
	v, ok := e.Lookup("x")
	if !ok || v.(value.Int).N != 42 {
		t.Fatalf("Lookup(x) = (%v, %v), want (42, true)", v, ok)
	}
	_, ok = e.Lookup("y")
	if ok {
		t.Fatal("Lookup(y) should report not found")
	}
}

func TestValidName(t *testing.T) {
	cases := map[string]bool{
		"x": true, "_x": true, "x1": true, "x_y2": true,
		"1x": false, "": false, "x-y": false, "x y": false,
	}
	for name, want := range cases {
		if got := ValidName(name); got != want {
			t.Errorf("ValidName(%q) = %v, want %v", name, got, want)
		}
	}
}

type fakeMutableHost struct {
	value.HostObjectKind
	tag string
}

func (h *fakeMutableHost) String() string       { return "fake:" + h.tag }
func (h *fakeMutableHost) Identity() string     { return "fake:" + h.tag }
func (h *fakeMutableHost) Subproject() string   { return "" }
func (h *fakeMutableHost) Mutable() bool        { return true }
func (h *fakeMutableHost) Clone() value.HostObject {
	return &fakeMutableHost{tag: h.tag}
}
func (h *fakeMutableHost) Method(name string) (value.HostMethod, bool) {
	return value.HostMethod{}, false
}
