package eval

import (
	"strconv"
	"strings"

	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/env"
	"github.com/bcl-lang/interp/internal/featurepolicy"
)

// dottedCompare is a minimal natural-dotted-version comparator, standing in
// for the reference host's internal/host.VersionCompare in tests that have
// no business depending on internal/host (it would create an import cycle
// anyway: host already imports eval).
func dottedCompare(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
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

// newTestEvaluator builds a bare Evaluator wired with a real Environment,
// Dispatcher, and Policy, good enough to exercise the eval* methods without
// any host-registered functions or builtins.
func newTestEvaluator() (*Evaluator, *[]string) {
	warnings := &[]string{}
	warn := func(format string, args ...any) { *warnings = append(*warnings, format) }
	policy := featurepolicy.New(warn, dottedCompare)
	d := dispatch.New(dispatch.NewRegistry(), dispatch.NewMethodTables())
	e := New(env.New(), d, policy, dottedCompare, warn, "")
	return e, warnings
}
