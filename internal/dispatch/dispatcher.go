package dispatch

import (
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

// escapeHatches are the only three function names allowed to receive a
// Disabler argument without the call itself collapsing to Disabler (spec
// §4.6).
var escapeHatches = map[string]bool{
	"get_variable": true,
	"set_variable": true,
	"is_disabler":  true,
}

// Dispatcher owns the function registry and built-in method tables and
// implements spec §4.5's call-dispatch rules: disabler short-circuit,
// argument flattening, and receiver-kind method dispatch.
type Dispatcher struct {
	Functions *Registry
	Methods   *MethodTables
}

// New builds a Dispatcher over the given registries.
func New(funcs *Registry, methods *MethodTables) *Dispatcher {
	return &Dispatcher{Functions: funcs, Methods: methods}
}

// CallFunction dispatches a bare function call by name (spec §4.5
// "Function calls").
func (d *Dispatcher) CallFunction(name string, pos []value.Value, kw map[string]value.Value, deps ValidateDeps) (value.Value, error) {
	if !escapeHatches[name] && value.AnyContainsDisabler(pos, kw) {
		return value.Disabler{}, nil
	}

	fn, ok := d.Functions.Lookup(name)
	if !ok {
		return nil, errors.NewInvalidCode(errors.DSP001, "Unknown function %q.", name)
	}

	callPos := pos
	if !fn.NoFlatten {
		callPos = Flatten(pos)
	}

	shapedPos, shapedKw, err := Validate(fn.Validator, callPos, kw, deps)
	if err != nil {
		return nil, err
	}

	result, err := fn.Call(shapedPos, shapedKw)
	if err != nil {
		return nil, err
	}
	return disablerIfNotFound(result, kw), nil
}

// CallMethod dispatches a method call on receiver (spec §4.5 "Method
// calls", §4.6 Disabler receiver special-case).
func (d *Dispatcher) CallMethod(receiver value.Value, name string, pos []value.Value, kw map[string]value.Value, deps ValidateDeps) (value.Value, error) {
	if disabler, ok := receiver.(value.Disabler); ok {
		if name == "found" {
			return value.Bool{B: false}, nil
		}
		_ = disabler
		return value.Disabler{}, nil
	}

	if value.AnyContainsDisabler(pos, kw) {
		return value.Disabler{}, nil
	}

	switch r := receiver.(type) {
	case value.File:
		return nil, errors.NewInvalidArguments(errors.DSP003, "File object has no method %q (files are not callable).", name)

	case value.HostObject:
		hm, ok := r.Method(name)
		if !ok {
			return nil, errors.NewInvalidArguments(errors.DSP002, "Object of type %q has no method %q.", r.Identity(), name)
		}
		callPos := pos
		if !hm.NoFlatten {
			callPos = Flatten(pos)
		}
		result, err := hm.Fn(callPos, kw)
		if err != nil {
			return nil, err
		}
		return disablerIfNotFound(result, kw), nil

	default:
		fn, ok := d.Methods.Lookup(receiver.Kind(), name)
		if !ok {
			return nil, errors.NewInvalidArguments(errors.DSP002, "%s has no method %q.", receiver.Kind(), name)
		}
		callPos := pos
		if !fn.NoFlatten {
			callPos = Flatten(pos)
		}
		// The receiver occupies slot 0, ahead of the call's own arguments,
		// so a built-in method's Validator describes the full (receiver,
		// args...) shape and its Call body reads pos[0] as the receiver.
		callPos = append([]value.Value{receiver}, callPos...)
		shapedPos, shapedKw, err := Validate(fn.Validator, callPos, kw, deps)
		if err != nil {
			return nil, err
		}
		result, err := fn.Call(shapedPos, shapedKw)
		if err != nil {
			return nil, err
		}
		return disablerIfNotFound(result, kw), nil
	}
}

// disablerIfNotFound implements the decorator described in spec §4.6's
// last sentence: a call whose keywords included `disabler: true` and whose
// host-object result reports found() == false is replaced with a fresh
// Disabler.
func disablerIfNotFound(result value.Value, kw map[string]value.Value) value.Value {
	want, ok := kw["disabler"]
	if !ok {
		return result
	}
	b, ok := want.(value.Bool)
	if !ok || !b.B {
		return result
	}
	ho, ok := result.(value.HostObject)
	if !ok {
		return result
	}
	found, ok := ho.Method("found")
	if !ok {
		return result
	}
	foundResult, err := found.Fn(nil, nil)
	if err != nil {
		return result
	}
	if fb, ok := foundResult.(value.Bool); ok && !fb.B {
		return value.Disabler{}
	}
	return result
}
