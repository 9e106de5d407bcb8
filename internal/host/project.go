package host

import (
	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/featurepolicy"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

// projectValidator describes `project(name, version: str, ...)`: one
// required string name, plus the `version` keyword every subproject's
// target resolution depends on (featurepolicy.Policy.SetProjectVersion).
var projectValidator = &dispatch.Validator{
	Positional: &typecheck.PositionalSpec{
		Required: []typecheck.TypeSet{typecheck.Of(value.KindString)},
	},
	Keywords: []typecheck.KeywordSpec{
		{Name: "version", Types: typecheck.Of(value.KindString), Default: value.Str{S: "0.0.0"}},
		{Name: "license", Types: typecheck.Of(value.KindString, value.KindArray), Listify: true, Default: value.Array{}},
	},
}

// RegisterProject adds the reserved `project` function (spec §4.2, §7
// EVL004: "the first statement must be a call to project()"), wiring its
// `version:` keyword into policy.SetProjectVersion so every later
// FeatureNew/FeatureDeprecated check and If-clause tentative-version
// override has a declared baseline to compare against.
func RegisterProject(funcs *dispatch.Registry, policy *featurepolicy.Policy, subproject string) {
	funcs.Register(&dispatch.Function{
		Name:      "project",
		Validator: projectValidator,
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			version := "0.0.0"
			if s, ok := kw["version"].(value.Str); ok {
				version = s.S
			}
			policy.SetProjectVersion(subproject, version)
			return value.Null{}, nil
		},
	})
}
