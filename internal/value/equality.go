package value

// Truthy implements spec §4.1: only Bool is truthy in a conditional.
func Truthy(v Value) (bool, bool) {
	b, ok := v.(Bool)
	if !ok {
		return false, false
	}
	return b.B, true
}

// Equal implements `==`/`!=` (spec §4.1): always defined. Mismatched
// variants are never equal — the deprecation warning for that case is the
// caller's responsibility (the evaluator, which has access to the warning
// sink), since this function has no side channel to emit one.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av.N == bv.N
	case Float:
		bv, ok := b.(Float)
		return ok && av.N == bv.N
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.B == bv.B
	case Str:
		bv, ok := b.(Str)
		return ok && av.S == bv.S
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			other, ok := bv.Get(k)
			if !ok || !Equal(av.vals[k], other) {
				return false
			}
		}
		return true
	case Range:
		bv, ok := b.(Range)
		return ok && av == bv
	case Disabler:
		_, ok := b.(Disabler)
		return ok
	case File:
		bv, ok := b.(File)
		return ok && av.Name == bv.Name
	case HostObject:
		bv, ok := b.(HostObject)
		return ok && av.Identity() == bv.Identity()
	default:
		return false
	}
}

// SameVariant reports whether a and b have the same Kind, which ordering
// comparisons (`<`,`<=`,`>`,`>=`) require among elementary values per
// spec §4.1.
func SameVariant(a, b Value) bool {
	return a.Kind() == b.Kind()
}

// CompareOrder orders two elementary values of identical Kind, returning
// -1/0/1. ok is false if the values are not elementary or not the same
// Kind — the caller (evaluator) turns that into an InterpreterException.
func CompareOrder(a, b Value) (cmp int, ok bool) {
	if !SameVariant(a, b) {
		return 0, false
	}
	switch av := a.(type) {
	case Int:
		bv := b.(Int)
		return cmp3(av.N, bv.N), true
	case Float:
		bv := b.(Float)
		return cmp3f(av.N, bv.N), true
	case Str:
		bv := b.(Str)
		if av.S < bv.S {
			return -1, true
		}
		if av.S > bv.S {
			return 1, true
		}
		return 0, true
	case Bool:
		bv := b.(Bool)
		return cmp3b(av.B, bv.B), true
	default:
		return 0, false
	}
}

func cmp3(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmp3f(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmp3b(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

// IsElementary reports whether v is one of the "elementary" variants
// ordering comparisons and `in`-LHS membership are restricted to.
func IsElementary(v Value) bool {
	switch v.(type) {
	case Int, Float, Bool, Str:
		return true
	default:
		return false
	}
}
