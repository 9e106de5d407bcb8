package typecheck

import (
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/featurepolicy"
	"github.com/bcl-lang/interp/internal/value"
)

// ContainerTypeInfo describes a keyword whose value is a container (Array
// or Dict) whose elements must themselves satisfy a type constraint (spec
// §4.4 Keyword gate).
type ContainerTypeInfo struct {
	Container value.Kind // KindArray or KindDict
	Contains  TypeSet

	// PairValueTypes, when set, constrains the odd-indexed elements of a
	// `pairs`-shaped array differently from the even-indexed ones
	// (SPEC_FULL.md supplemented feature 4). Zero value means "same as
	// Contains".
	PairValueTypes TypeSet
	Pairs          bool
	AllowEmpty     bool
}

// KeywordSpec is one recognized keyword's declarative schema entry.
type KeywordSpec struct {
	Name       string
	Types      TypeSet            // scalar type union; ignored if Container != nil
	Container  *ContainerTypeInfo // set for container-typed keywords
	Required   bool
	Listify    bool
	Default    value.Value // used when missing and not required
	Since      string      // feature-new gate version, "" if none
	Deprecated string      // feature-deprecated gate version, "" if none
}

// UnknownKeywordWarner is invoked once per unrecognized keyword name.
type UnknownKeywordWarner func(name string)

// CheckKeywords validates and normalizes kwargs against schema (spec
// §4.4). Unknown keywords are dropped after a warning rather than
// rejected. The returned map always contains every schema entry.
func CheckKeywords(
	subproject string,
	kwargs map[string]value.Value,
	schema []KeywordSpec,
	policy *featurepolicy.Policy,
	warnUnknown UnknownKeywordWarner,
) (map[string]value.Value, error) {
	known := make(map[string]bool, len(schema))
	for _, s := range schema {
		known[s.Name] = true
	}
	for name := range kwargs {
		if !known[name] && warnUnknown != nil {
			warnUnknown(name)
		}
	}

	out := make(map[string]value.Value, len(schema))
	for _, s := range schema {
		v, present := kwargs[s.Name]
		if !present {
			if s.Required {
				return nil, errors.NewInvalidArguments(errors.TYP003, "missing required keyword argument %q", s.Name)
			}
			if s.Default == nil {
				out[s.Name] = value.Null{}
			} else {
				out[s.Name] = s.Default
			}
			continue
		}

		if policy != nil {
			if s.Since != "" {
				policy.FeatureNew(subproject, "keyword \""+s.Name+"\"", s.Since)
			}
			if s.Deprecated != "" {
				policy.FeatureDeprecated(subproject, "keyword \""+s.Name+"\"", s.Deprecated)
			}
		}

		if s.Listify && v.Kind() != value.KindArray {
			v = value.Array{Elems: []value.Value{v}}
		}

		if s.Container != nil {
			checked, err := checkContainer(s.Name, v, s.Container)
			if err != nil {
				return nil, err
			}
			out[s.Name] = checked
			continue
		}

		if !s.Types.Match(v) {
			return nil, errors.NewInvalidArguments(errors.TYP004,
				"keyword argument %q must be %s, got %s", s.Name, s.Types, v.Kind())
		}
		out[s.Name] = v
	}
	return out, nil
}

func checkContainer(name string, v value.Value, info *ContainerTypeInfo) (value.Value, error) {
	if v.Kind() != info.Container {
		return nil, errors.NewInvalidArguments(errors.TYP005,
			"keyword argument %q must be %s, got %s", name, info.Container, v.Kind())
	}

	var elems []value.Value
	switch t := v.(type) {
	case value.Array:
		elems = t.Elems
	case *value.Dict:
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			elems = append(elems, val)
		}
	}

	if !info.AllowEmpty && len(elems) == 0 {
		return nil, errors.NewInvalidArguments(errors.TYP005, "keyword argument %q must not be empty", name)
	}
	if info.Pairs && len(elems)%2 != 0 {
		return nil, errors.NewInvalidArguments(errors.TYP005, "keyword argument %q must have an even number of elements", name)
	}

	for i, e := range elems {
		want := info.Contains
		if info.Pairs && i%2 == 1 && len(info.PairValueTypes) > 0 {
			want = info.PairValueTypes
		}
		if !want.Match(e) {
			return nil, errors.NewInvalidArguments(errors.TYP005,
				"keyword argument %q element %d must be %s, got %s", name, i, want, e.Kind())
		}
	}
	return v, nil
}
