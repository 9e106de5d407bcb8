package host

import (
	"strconv"
	"strings"
)

// VersionCompare is the reference featurepolicy.VersionCompare
// implementation: simple dotted-numeric comparison, matching the natural
// sort internal/featurepolicy already uses for its report ordering. Kept
// on the standard library deliberately — no third-party version-comparison
// library appears anywhere in the example pack, so this is the one piece
// of host surface spec §1 explicitly assigns outside the interpreter core
// (see DESIGN.md).
func VersionCompare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		if an != bn {
			return an - bn
		}
	}
	return 0
}

// VersionCompareCondition evaluates a single condition string of the form
// "<op><version>" (">=1.2", "<2.0", "==0.9", ...) against target. The
// built-in String.version_compare method does not call it: it has its own
// condition evaluator in internal/builtins/string.go.
func VersionCompareCondition(target, cond string) bool {
	for _, op := range []string{">=", "<=", "!=", "==", ">", "<"} {
		if strings.HasPrefix(cond, op) {
			rhs := strings.TrimSpace(cond[len(op):])
			c := VersionCompare(target, rhs)
			switch op {
			case ">=":
				return c >= 0
			case "<=":
				return c <= 0
			case "!=":
				return c != 0
			case "==":
				return c == 0
			case ">":
				return c > 0
			case "<":
				return c < 0
			}
		}
	}
	return VersionCompare(target, cond) == 0
}

// VersionCompareConditionWithMin behaves like VersionCompareCondition but
// additionally requires target to be at least min, the
// `version_compare_condition_with_min` helper the original build tool
// layers on top of plain version_compare for deprecation-safe checks
// (SPEC_FULL.md "Host surface components").
func VersionCompareConditionWithMin(target, cond, min string) bool {
	if VersionCompare(target, min) < 0 {
		return false
	}
	return VersionCompareCondition(target, cond)
}
