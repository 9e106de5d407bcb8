package host

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/env"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

// HostTypeFactory constructs a fresh HostObject from a constructor call's
// already-reduced arguments (spec §4.6 "host object ... provided by the
// embedding application").
type HostTypeFactory func(pos []value.Value, kw map[string]value.Value) (value.HostObject, error)

// Registry is the capability-gated surface a host application uses to
// extend the interpreter: functions callable from DSL source, constant
// builtins visible in every Environment, and host object type
// constructors. This generalizes the teacher's effects.Registry (an
// ("IO","FS") -> op map keyed by a fixed effect/op pair) to open-ended DSL
// function names, each gated behind an optional named capability rather
// than a hardcoded effect set.
type Registry struct {
	grants *Grants
	funcs  *dispatch.Registry
	types  map[string]HostTypeFactory
	caps   map[string]string // function name -> required capability, "" = ungated
}

// NewRegistry builds an empty Registry over an already-constructed
// dispatch.Registry (the same one wired into dispatch.Dispatcher).
func NewRegistry(grants *Grants, funcs *dispatch.Registry) *Registry {
	return &Registry{
		grants: grants,
		funcs:  funcs,
		types:  make(map[string]HostTypeFactory),
		caps:   make(map[string]string),
	}
}

// RegisterFunction adds a DSL-callable function. requiredCap may be empty
// for an ungated function; otherwise fn.Call is wrapped so every dispatch
// of this name re-checks the grant, refusing with InvalidCode if it was
// never given — the capability gate travels with the registration, so the
// dispatcher needs no awareness of it.
func (r *Registry) RegisterFunction(requiredCap string, fn *dispatch.Function) {
	r.caps[fn.Name] = requiredCap
	if requiredCap != "" {
		inner := fn.Call
		name := fn.Name
		fn.Call = func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			if r.grants == nil || !r.grants.Has(requiredCap) {
				return nil, errors.NewInvalidCode(errors.HST001, "function %q requires capability %q, which was not granted", name, requiredCap)
			}
			return inner(pos, kw)
		}
	}
	r.funcs.Register(fn)
}

// RegisterBuiltin binds name to a constant Value in every Environment this
// host populates — the host-side counterpart of internal/env's builtins
// layer (spec §3).
func (r *Registry) RegisterBuiltin(e *env.Environment, name string, v value.Value) {
	e.SetBuiltin(name, v)
}

// RegisterHostType records a constructor for a named host object type
// (e.g. "dependency", "compiler"), invoked by registering it as a regular
// DSL function under the same name via RegisterFunction — a constructor
// call like `dependency('zlib')` is dispatched exactly like any other
// function call (spec §4.5), it just happens to build a HostObject.
func (r *Registry) RegisterHostType(name string, factory HostTypeFactory) {
	r.types[name] = factory
}

// HostType looks up a previously registered type constructor by name.
func (r *Registry) HostType(name string) (HostTypeFactory, bool) {
	f, ok := r.types[name]
	return f, ok
}

// Capabilities returns the function-name -> required-capability map, for
// the reference CLI's `report` subcommand to list what a program's host
// surface depends on.
func (r *Registry) Capabilities() map[string]string {
	out := make(map[string]string, len(r.caps))
	for k, v := range r.caps {
		out[k] = v
	}
	return out
}
