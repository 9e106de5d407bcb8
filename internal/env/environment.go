// Package env implements the DSL's variable environment (spec §3):
// builtins take precedence over variables, and builtin names may never be
// reassigned (§8 Testable Property 2, "builtins are shadow-proof").
package env

import (
	"regexp"

	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

var identRe = regexp.MustCompile(`^[_A-Za-z][_A-Za-z0-9]*$`)

// ValidName reports whether name matches the DSL's identifier grammar.
func ValidName(name string) bool {
	return identRe.MatchString(name)
}

// Environment is a name → Value mapping split into an immutable builtins
// layer and a settable variables layer.
type Environment struct {
	builtins  map[string]value.Value
	variables map[string]value.Value
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{
		builtins:  make(map[string]value.Value),
		variables: make(map[string]value.Value),
	}
}

// SetBuiltin registers a name in the immutable builtins layer. Intended for
// host setup only — call before any user code runs.
func (e *Environment) SetBuiltin(name string, v value.Value) {
	e.builtins[name] = v
}

// IsBuiltin reports whether name is bound in the builtins layer.
func (e *Environment) IsBuiltin(name string) bool {
	_, ok := e.builtins[name]
	return ok
}

// Get resolves name, builtins first, then variables (spec §3 "Read
// order"). An unresolved name is an InvalidCode error (ENV001).
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.builtins[name]; ok {
		return v, nil
	}
	if v, ok := e.variables[name]; ok {
		return v, nil
	}
	return nil, errors.NewInvalidCode(errors.ENV001, "Unknown variable %q.", name)
}

// Lookup is Get without raising: (value, found).
func (e *Environment) Lookup(name string) (value.Value, bool) {
	if v, ok := e.builtins[name]; ok {
		return v, true
	}
	v, ok := e.variables[name]
	return v, ok
}

// Assign binds name in the variables layer, deep-copying mutable host
// objects per spec §4.7. Reassigning a builtin name is an InvalidCode
// error (ENV002); an invalid identifier is ENV003.
func (e *Environment) Assign(name string, v value.Value) error {
	if !ValidName(name) {
		return errors.NewInvalidCode(errors.ENV003, "Invalid variable name %q.", name)
	}
	if e.IsBuiltin(name) {
		return errors.NewInvalidCode(errors.ENV002, "Tried to overwrite internal variable %q.", name)
	}
	e.variables[name] = value.CloneForAssignment(v)
	return nil
}

// Variables returns a snapshot of the user-settable layer.
func (e *Environment) Variables() map[string]value.Value {
	out := make(map[string]value.Value, len(e.variables))
	for k, v := range e.variables {
		out[k] = v
	}
	return out
}
