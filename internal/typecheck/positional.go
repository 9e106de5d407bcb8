package typecheck

import (
	"fmt"

	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

// VariadicSpec describes a trailing repeated parameter (spec §4.4).
// Max == 0 means unlimited.
type VariadicSpec struct {
	Types    TypeSet
	MinCount int
	MaxCount int
}

// PositionalSpec is the declared shape of a callable's positional
// parameters: a fixed required prefix, plus at most one of Variadic or
// OptionalTail (never both).
type PositionalSpec struct {
	Required     []TypeSet
	Variadic     *VariadicSpec
	OptionalTail []TypeSet
}

// CheckPositional validates args against spec and reshapes them per spec
// §4.4: a variadic tail becomes one nested Array as the final element;
// missing optionals are filled with value.Null{}; otherwise args pass
// through unchanged.
func CheckPositional(args []value.Value, spec PositionalSpec) ([]value.Value, error) {
	required := len(spec.Required)

	switch {
	case spec.Variadic != nil:
		min := required + spec.Variadic.MinCount
		if len(args) < min {
			return nil, arityErr(len(args), min, -1)
		}
		if spec.Variadic.MaxCount > 0 {
			max := required + spec.Variadic.MaxCount
			if len(args) > max {
				return nil, arityErr(len(args), min, max)
			}
		}
		for i := 0; i < required; i++ {
			if !spec.Required[i].Match(args[i]) {
				return nil, typeErr(i, spec.Required[i], args[i])
			}
		}
		tail := args[required:]
		for i, v := range tail {
			if !spec.Variadic.Types.Match(v) {
				return nil, typeErr(required+i, spec.Variadic.Types, v)
			}
		}
		shaped := make([]value.Value, required+1)
		copy(shaped, args[:required])
		shaped[required] = value.Array{Elems: append([]value.Value{}, tail...)}
		return shaped, nil

	case spec.OptionalTail != nil:
		maxArity := required + len(spec.OptionalTail)
		if len(args) < required || len(args) > maxArity {
			return nil, arityErr(len(args), required, maxArity)
		}
		for i := 0; i < required; i++ {
			if !spec.Required[i].Match(args[i]) {
				return nil, typeErr(i, spec.Required[i], args[i])
			}
		}
		shaped := make([]value.Value, maxArity)
		copy(shaped, args)
		for i := len(args); i < maxArity; i++ {
			shaped[i] = value.Null{}
		}
		for i, ts := range spec.OptionalTail {
			idx := required + i
			if idx < len(args) && !value.IsNull(shaped[idx]) && !ts.Match(shaped[idx]) {
				return nil, typeErr(idx, ts, shaped[idx])
			}
		}
		return shaped, nil

	default:
		if len(args) != required {
			return nil, arityErr(len(args), required, required)
		}
		for i := 0; i < required; i++ {
			if !spec.Required[i].Match(args[i]) {
				return nil, typeErr(i, spec.Required[i], args[i])
			}
		}
		return args, nil
	}
}

func arityErr(got, min, max int) error {
	switch {
	case max < 0:
		return errors.NewInvalidArguments(errors.TYP001, "expected at least %d positional argument(s), got %d", min, got)
	case min == max:
		return errors.NewInvalidArguments(errors.TYP001, "expected exactly %d positional argument(s), got %d", min, got)
	default:
		return errors.NewInvalidArguments(errors.TYP001, "expected between %d and %d positional argument(s), got %d", min, max, got)
	}
}

func typeErr(index int, want TypeSet, got value.Value) error {
	return errors.NewInvalidArguments(errors.TYP002,
		fmt.Sprintf("argument %d must be %s, got %s", index, want, got.Kind()))
}
