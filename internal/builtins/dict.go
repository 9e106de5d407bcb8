package builtins

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

var dictNoArgs = &dispatch.Validator{Positional: &typecheck.PositionalSpec{
	Required: []typecheck.TypeSet{typecheck.Of(value.KindDict)},
}}

// registerDictMethods registers the Dict value's built-in method table.
// keys() returns keys in ascending lexicographic order (SortedKeys), the
// same order `foreach k, v : dict` uses at the evaluator (spec §4.2),
// matching the original's `sorted(obj.keys())`.
func registerDictMethods(m *dispatch.MethodTables) {
	dict := func(pos []value.Value) *value.Dict { return pos[0].(*value.Dict) }

	m.Register(value.KindDict, &dispatch.Function{Name: "keys", Validator: dictNoArgs,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			keys := dict(pos).SortedKeys()
			elems := make([]value.Value, len(keys))
			for i, k := range keys {
				elems[i] = value.Str{S: k}
			}
			return value.Array{Elems: elems}, nil
		}})

	m.Register(value.KindDict, &dispatch.Function{Name: "has_key", Validator: &dispatch.Validator{
		Positional: &typecheck.PositionalSpec{
			Required: []typecheck.TypeSet{typecheck.Of(value.KindDict), typecheck.Of(value.KindString)},
		},
	}, Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		_, ok := dict(pos).Get(pos[1].(value.Str).S)
		return value.Bool{B: ok}, nil
	}})

	m.Register(value.KindDict, &dispatch.Function{Name: "get", Validator: &dispatch.Validator{
		Positional: &typecheck.PositionalSpec{
			Required:     []typecheck.TypeSet{typecheck.Of(value.KindDict), typecheck.Of(value.KindString)},
			OptionalTail: []typecheck.TypeSet{nil},
		},
	}, Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		key := pos[1].(value.Str).S
		if v, ok := dict(pos).Get(key); ok {
			return v, nil
		}
		if len(pos) > 2 && !value.IsNull(pos[2]) {
			return pos[2], nil
		}
		return nil, errors.NewInvalidArguments(errors.VAL005, "dict has no key %q", key)
	}})
}
