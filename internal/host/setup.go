package host

import (
	"io"

	"github.com/bcl-lang/interp/internal/builtins"
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/env"
	"github.com/bcl-lang/interp/internal/eval"
	"github.com/bcl-lang/interp/internal/featurepolicy"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

// Interpreter bundles the pieces a caller needs to run a program: the
// Evaluator itself plus the Registry a test or CLI command can use to
// grant capabilities and inspect what a program required.
type Interpreter struct {
	Eval     *eval.Evaluator
	Registry *Registry
	Grants   *Grants
}

// New builds a fully-wired interpreter: the BuiltinMethods tables (spec
// §4.5), the reserved `project` function, the three example host object
// types (dependency, compiler, file_handle), and a color-backed warning
// sink writing to w. subproject is "" for the top-level project.
func New(w io.Writer, subproject string) *Interpreter {
	e := env.New()
	funcs := dispatch.NewRegistry()
	methods := dispatch.NewMethodTables()
	policy := featurepolicy.New(ColorWarn(w), VersionCompare)

	builtins.Register(funcs, methods, e, VersionCompare)
	RegisterProject(funcs, policy, subproject)

	grants := NewGrants()
	reg := NewRegistry(grants, funcs)
	registerExampleHostTypes(reg, funcs)
	RegisterFS(reg, FSSandbox{})

	d := dispatch.New(funcs, methods)
	ev := eval.New(e, d, policy, VersionCompare, ColorWarn(w), subproject)

	return &Interpreter{Eval: ev, Registry: reg, Grants: grants}
}

// registerExampleHostTypes wires the three reference host object types
// from SPEC_FULL.md's "Host surface components" section.
func registerExampleHostTypes(reg *Registry, funcs *dispatch.Registry) {
	reg.RegisterHostType("dependency", func(pos []value.Value, kw map[string]value.Value) (value.HostObject, error) {
		name := ""
		if len(pos) > 0 {
			if s, ok := pos[0].(value.Str); ok {
				name = s.S
			}
		}
		required := true
		if b, ok := kw["required"].(value.Bool); ok {
			required = b.B
		}
		if !required {
			return NewNotFoundDependency(name, ""), nil
		}
		version := "unknown"
		if v, ok := kw["version"].(value.Str); ok {
			version = v.S
		}
		return NewDependency(name, version, ""), nil
	})

	reg.RegisterFunction("", &dispatch.Function{
		Name: "dependency",
		Validator: &dispatch.Validator{
			Positional: &typecheck.PositionalSpec{
				Required: []typecheck.TypeSet{typecheck.Of(value.KindString)},
			},
			Keywords: []typecheck.KeywordSpec{
				{Name: "required", Types: typecheck.Of(value.KindBool), Default: value.Bool{B: true}},
				{Name: "version", Types: typecheck.Of(value.KindString)},
				{Name: "disabler", Types: typecheck.Of(value.KindBool), Default: value.Bool{B: false}},
			},
		},
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			factory, _ := reg.HostType("dependency")
			return factory(pos, kw)
		},
	})

	reg.RegisterHostType("compiler", func(pos []value.Value, kw map[string]value.Value) (value.HostObject, error) {
		id := "cc"
		if len(pos) > 0 {
			if s, ok := pos[0].(value.Str); ok {
				id = s.S
			}
		}
		return NewCompiler(id, ""), nil
	})

	reg.RegisterFunction("", &dispatch.Function{
		Name: "compiler",
		Validator: &dispatch.Validator{
			Positional: &typecheck.PositionalSpec{
				OptionalTail: []typecheck.TypeSet{typecheck.Of(value.KindString)},
			},
		},
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			factory, _ := reg.HostType("compiler")
			return factory(pos, kw)
		},
	})

	reg.RegisterFunction("", &dispatch.Function{
		Name: "file_handle",
		Validator: &dispatch.Validator{
			Positional: &typecheck.PositionalSpec{
				Required: []typecheck.TypeSet{typecheck.Of(value.KindString)},
			},
		},
		Call: FileHandle,
	})
}
