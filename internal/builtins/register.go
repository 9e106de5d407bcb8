// Package builtins supplies the BuiltinMethods component of spec §4.5:
// the method tables for String/Int/Bool/Array/Dict values, and the three
// dispatch escape-hatch functions plus the disabler() constructor (§4.6).
// Method bodies are grouped by receiver kind, mirroring the teacher's
// register*Meta()-per-concern layout in internal/builtins/registry.go.
package builtins

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/env"
	"github.com/bcl-lang/interp/internal/featurepolicy"
)

// Register wires every built-in method table and escape-hatch function
// into funcs/methods. cmp is the host's version comparator, used by
// String.version_compare().
func Register(funcs *dispatch.Registry, methods *dispatch.MethodTables, e *env.Environment, cmp featurepolicy.VersionCompare) {
	registerStringMethods(methods, cmp)
	registerIntMethods(methods)
	registerBoolMethods(methods)
	registerArrayMethods(methods)
	registerDictMethods(methods)
	registerEscapeHatches(funcs, e)
}
