package builtins

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/env"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

// registerEscapeHatches registers the three functions spec §4.6 names as
// exempt from the disabler short-circuit (get_variable, set_variable,
// is_disabler), plus the disabler() constructor that produces the
// sentinel they inspect.
func registerEscapeHatches(r *dispatch.Registry, e *env.Environment) {
	r.Register(&dispatch.Function{
		Name: "get_variable",
		Validator: &dispatch.Validator{Positional: &typecheck.PositionalSpec{
			Required:     []typecheck.TypeSet{typecheck.Of(value.KindString)},
			OptionalTail: []typecheck.TypeSet{nil},
		}},
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			name := pos[0].(value.Str).S
			if v, ok := e.Lookup(name); ok {
				return v, nil
			}
			if len(pos) > 1 && !value.IsNull(pos[1]) {
				return pos[1], nil
			}
			return nil, errors.NewInvalidCode(errors.ENV001, "Unknown variable %q.", name)
		},
	})

	r.Register(&dispatch.Function{
		Name: "set_variable",
		Validator: &dispatch.Validator{Positional: &typecheck.PositionalSpec{
			Required: []typecheck.TypeSet{typecheck.Of(value.KindString), nil},
		}},
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			if err := e.Assign(pos[0].(value.Str).S, pos[1]); err != nil {
				return nil, err
			}
			return value.Null{}, nil
		},
	})

	r.Register(&dispatch.Function{
		Name: "is_disabler",
		Validator: &dispatch.Validator{Positional: &typecheck.PositionalSpec{
			Required: []typecheck.TypeSet{nil},
		}},
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Bool{B: pos[0].Kind() == value.KindDisabler}, nil
		},
	})

	r.Register(&dispatch.Function{
		Name: "disabler",
		Validator: &dispatch.Validator{Positional: &typecheck.PositionalSpec{}},
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Disabler{}, nil
		},
	})
}
