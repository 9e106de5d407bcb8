package builtins

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

var intNoArgs = &dispatch.Validator{Positional: &typecheck.PositionalSpec{
	Required: []typecheck.TypeSet{typecheck.Of(value.KindInt)},
}}

// registerIntMethods registers the Integer value's built-in method table.
func registerIntMethods(m *dispatch.MethodTables) {
	n := func(pos []value.Value) int64 { return pos[0].(value.Int).N }

	m.Register(value.KindInt, &dispatch.Function{Name: "to_string", Validator: intNoArgs,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Str{S: pos[0].String()}, nil
		}})
	m.Register(value.KindInt, &dispatch.Function{Name: "is_even", Validator: intNoArgs,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Bool{B: n(pos)%2 == 0}, nil
		}})
	m.Register(value.KindInt, &dispatch.Function{Name: "is_odd", Validator: intNoArgs,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Bool{B: n(pos)%2 != 0}, nil
		}})
}

var boolNoArgs = &dispatch.Validator{Positional: &typecheck.PositionalSpec{
	Required: []typecheck.TypeSet{typecheck.Of(value.KindBool)},
}}

// registerBoolMethods registers the Bool value's built-in method table.
func registerBoolMethods(m *dispatch.MethodTables) {
	// to_string() takes either no arguments or exactly two string
	// arguments naming the true/false rendering, so there's no fixed
	// arity a PositionalSpec can express; validated by hand instead.
	m.Register(value.KindBool, &dispatch.Function{Name: "to_string", Validator: nil,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			b := pos[0].(value.Bool).B
			args := pos[1:]
			switch len(args) {
			case 0:
				return value.Str{S: pos[0].String()}, nil
			case 2:
				trueStr, ok1 := args[0].(value.Str)
				falseStr, ok2 := args[1].(value.Str)
				if !ok1 || !ok2 {
					return nil, errors.NewInvalidArguments(errors.TYP002, "to_string() arguments must both be strings")
				}
				if b {
					return trueStr, nil
				}
				return falseStr, nil
			default:
				return nil, errors.NewInvalidArguments(errors.TYP001, "to_string() must have either no arguments or exactly two string arguments")
			}
		}})
	m.Register(value.KindBool, &dispatch.Function{Name: "to_int", Validator: boolNoArgs,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			if pos[0].(value.Bool).B {
				return value.Int{N: 1}, nil
			}
			return value.Int{N: 0}, nil
		}})
}
