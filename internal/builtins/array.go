package builtins

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

var arrayNoArgs = &dispatch.Validator{Positional: &typecheck.PositionalSpec{
	Required: []typecheck.TypeSet{typecheck.Of(value.KindArray)},
}}

// arrayContains reports whether target occurs anywhere in elems, descending
// into nested arrays so [[1,2],3].contains(2) is true, matching the
// original's check_contains.
func arrayContains(elems []value.Value, target value.Value) bool {
	for _, e := range elems {
		if nested, ok := e.(value.Array); ok {
			if arrayContains(nested.Elems, target) {
				return true
			}
			continue
		}
		if value.Equal(e, target) {
			return true
		}
	}
	return false
}

// registerArrayMethods registers the Array value's built-in method table.
func registerArrayMethods(m *dispatch.MethodTables) {
	elems := func(pos []value.Value) []value.Value { return pos[0].(value.Array).Elems }

	m.Register(value.KindArray, &dispatch.Function{Name: "length", Validator: arrayNoArgs,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Int{N: int64(len(elems(pos)))}, nil
		}})

	m.Register(value.KindArray, &dispatch.Function{Name: "contains", Validator: &dispatch.Validator{
		Positional: &typecheck.PositionalSpec{
			Required: []typecheck.TypeSet{typecheck.Of(value.KindArray), nil},
		},
	}, Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		return value.Bool{B: arrayContains(elems(pos), pos[1])}, nil
	}})

	// The fallback argument always arrives pre-evaluated here (argreduce
	// evaluates every argument expression before Call ever runs), unlike
	// the original Meson interpreter's dict.get path where an unevaluated
	// default can survive; kept identical to the original's array-get
	// semantics, which never needed that path anyway.
	m.Register(value.KindArray, &dispatch.Function{Name: "get", Validator: &dispatch.Validator{
		Positional: &typecheck.PositionalSpec{
			Required:     []typecheck.TypeSet{typecheck.Of(value.KindArray), typecheck.Of(value.KindInt)},
			OptionalTail: []typecheck.TypeSet{nil},
		},
	}, Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		list := elems(pos)
		idx := int(pos[1].(value.Int).N)
		if idx < 0 {
			idx += len(list)
		}
		if idx >= 0 && idx < len(list) {
			return list[idx], nil
		}
		if len(pos) > 2 && !value.IsNull(pos[2]) {
			return pos[2], nil
		}
		return nil, errors.NewInvalidArguments(errors.VAL005, "array index %d out of bounds (length %d)", int(pos[1].(value.Int).N), len(list))
	}})
}
