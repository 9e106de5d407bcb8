package builtins

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/featurepolicy"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

var formatVarRe = regexp.MustCompile(`@([^@]+)@`)

// registerStringMethods registers the String value's built-in method table
// (spec §4.5). cmp backs version_compare; the tentative-target-version
// side effect of using it inside an `if` condition on a VersionString is
// applied by the evaluator, not here (spec §4.2).
func registerStringMethods(m *dispatch.MethodTables, cmp featurepolicy.VersionCompare) {
	str := func(pos []value.Value) string { return pos[0].(value.Str).S }

	register := func(name string, spec *dispatch.Validator, fn dispatch.Callable) {
		m.Register(value.KindString, &dispatch.Function{Name: name, Validator: spec, Call: fn})
	}

	register("to_upper", stringNoArgs, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		return value.Str{S: strings.ToUpper(str(pos))}, nil
	})
	register("to_lower", stringNoArgs, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		return value.Str{S: strings.ToLower(str(pos))}, nil
	})
	register("strip", &dispatch.Validator{Positional: &typecheck.PositionalSpec{
		Required:     []typecheck.TypeSet{typecheck.Of(value.KindString)},
		OptionalTail: []typecheck.TypeSet{typecheck.Of(value.KindString)},
	}}, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		s := str(pos)
		if len(pos) > 1 && !value.IsNull(pos[1]) {
			return value.Str{S: strings.Trim(s, pos[1].(value.Str).S)}, nil
		}
		return value.Str{S: strings.TrimSpace(s)}, nil
	})
	register("contains", stringOneArg, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		return value.Bool{B: strings.Contains(str(pos), pos[1].(value.Str).S)}, nil
	})
	register("startswith", stringOneArg, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		return value.Bool{B: strings.HasPrefix(str(pos), pos[1].(value.Str).S)}, nil
	})
	register("endswith", stringOneArg, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		return value.Bool{B: strings.HasSuffix(str(pos), pos[1].(value.Str).S)}, nil
	})
	register("replace", &dispatch.Validator{Positional: &typecheck.PositionalSpec{
		Required: []typecheck.TypeSet{typecheck.Of(value.KindString), typecheck.Of(value.KindString), typecheck.Of(value.KindString)},
	}}, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		old, new := pos[1].(value.Str).S, pos[2].(value.Str).S
		return value.Str{S: strings.ReplaceAll(str(pos), old, new)}, nil
	})
	register("split", &dispatch.Validator{Positional: &typecheck.PositionalSpec{
		Required:     []typecheck.TypeSet{typecheck.Of(value.KindString)},
		OptionalTail: []typecheck.TypeSet{typecheck.Of(value.KindString)},
	}}, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		s := str(pos)
		var parts []string
		if len(pos) > 1 && !value.IsNull(pos[1]) {
			parts = strings.Split(s, pos[1].(value.Str).S)
		} else {
			parts = strings.Fields(s)
		}
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.Str{S: p}
		}
		return value.Array{Elems: elems}, nil
	})
	register("to_int", stringNoArgs, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(str(pos)), 10, 64)
		if err != nil {
			return nil, errors.NewInvalidArguments(errors.VAL002, "string %q cannot be converted to int", str(pos))
		}
		return value.Int{N: n}, nil
	})
	register("underscorify", stringNoArgs, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		var b strings.Builder
		for _, r := range str(pos) {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			} else {
				b.WriteRune('_')
			}
		}
		return value.Str{S: b.String()}, nil
	})
	register("join", &dispatch.Validator{Positional: &typecheck.PositionalSpec{
		Required: []typecheck.TypeSet{typecheck.Of(value.KindString), typecheck.Of(value.KindArray)},
	}}, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		elems := pos[1].(value.Array).Elems
		parts := make([]string, len(elems))
		for i, el := range elems {
			s, ok := el.(value.Str)
			if !ok {
				return nil, errors.NewInvalidArguments(errors.TYP002, "join() list element %d must be a string, got %s", i, el.Kind())
			}
			parts[i] = s.S
		}
		return value.Str{S: strings.Join(parts, str(pos))}, nil
	})
	register("substring", &dispatch.Validator{Positional: &typecheck.PositionalSpec{
		Required:     []typecheck.TypeSet{typecheck.Of(value.KindString)},
		OptionalTail: []typecheck.TypeSet{typecheck.Of(value.KindInt), typecheck.Of(value.KindInt)},
	}}, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		s := str(pos)
		runes := []rune(s)
		n := len(runes)
		start, end := 0, n
		if len(pos) > 1 && !value.IsNull(pos[1]) {
			start = int(pos[1].(value.Int).N)
		}
		if len(pos) > 2 && !value.IsNull(pos[2]) {
			end = int(pos[2].(value.Int).N)
		}
		// Python slice semantics: negative indices count from the end,
		// then both bounds clamp into [0, n].
		if start < 0 {
			start += n
		}
		if end < 0 {
			end += n
		}
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		if start > n {
			start = n
		}
		if start > end {
			start = end
		}
		return value.Str{S: string(runes[start:end])}, nil
	})
	register("version_compare", stringOneArg, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		cond := pos[1].(value.Str).S
		return value.Bool{B: evalVersionCondition(cmp, str(pos), cond)}, nil
	})
	// format() substitutes @0@, @1@, ... with positional args and @name@
	// with the same-named keyword, per spec §4.2's format-string round
	// trip (the FormatString AST node implements the bare-literal version
	// of this same substitution at the evaluator level).
	register("format", nil, func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
		args := pos[1:]
		s := str(pos)
		out := formatVarRe.ReplaceAllStringFunc(s, func(tok string) string {
			name := tok[1 : len(tok)-1]
			if idx, err := strconv.Atoi(name); err == nil {
				if idx >= 0 && idx < len(args) {
					return renderFormatArg(args[idx])
				}
				return tok
			}
			if v, ok := kw[name]; ok {
				return renderFormatArg(v)
			}
			return tok
		})
		return value.Str{S: out}, nil
	})
}

func renderFormatArg(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return s.S
	}
	return v.String()
}

// evalVersionCondition supports the bare two-argument form of
// version_compare_condition_with_min: cond is an operator-prefixed
// version string ("<1.0", ">=2.3", or a bare version meaning "==").
func evalVersionCondition(cmp featurepolicy.VersionCompare, target, cond string) bool {
	ops := []string{">=", "<=", "!=", "==", ">", "<"}
	op, rhs := "==", cond
	for _, o := range ops {
		if strings.HasPrefix(cond, o) {
			op, rhs = o, strings.TrimSpace(cond[len(o):])
			break
		}
	}
	c := cmp(target, rhs)
	switch op {
	case ">=":
		return c >= 0
	case "<=":
		return c <= 0
	case "!=":
		return c != 0
	case ">":
		return c > 0
	case "<":
		return c < 0
	default:
		return c == 0
	}
}

// stringNoArgs and stringOneArg describe a method's full (receiver,
// args...) shape: slot 0 is always the receiver, prepended by the
// dispatcher before the Validator runs (see dispatch.CallMethod).
var stringNoArgs = &dispatch.Validator{Positional: &typecheck.PositionalSpec{
	Required: []typecheck.TypeSet{typecheck.Of(value.KindString)},
}}

var stringOneArg = &dispatch.Validator{Positional: &typecheck.PositionalSpec{
	Required: []typecheck.TypeSet{typecheck.Of(value.KindString), typecheck.Of(value.KindString)},
}}
