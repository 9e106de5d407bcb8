package dispatch

import (
	"github.com/bcl-lang/interp/internal/featurepolicy"
	"github.com/bcl-lang/interp/internal/typecheck"
	"github.com/bcl-lang/interp/internal/value"
)

// Callable is a host or builtin function/method body: it receives the
// already-reduced, already-typechecked positional list and keyword map.
type Callable func(pos []value.Value, kw map[string]value.Value) (value.Value, error)

// Validator is the composed, pre-built argument contract for one callable,
// assembled once at registration time rather than as a stack of
// decorators (spec §9 design note: "prefer one composed Validator value
// per callable built at registration time, not a stack of wrappers").
type Validator struct {
	Positional *typecheck.PositionalSpec
	Keywords   []typecheck.KeywordSpec
}

// Function is a registered top-level, name-addressed callable (spec
// §4.5's function registry) or a built-in method table entry.
type Function struct {
	Name      string
	NoFlatten bool
	Validator *Validator
	Call      Callable
}

// Registry is the function-name → Function lookup table.
type Registry struct {
	funcs map[string]*Function
}

// NewRegistry builds an empty function registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]*Function)}
}

// Register adds fn, overwriting any previous registration of the same
// name (the host is trusted not to collide on names it owns).
func (r *Registry) Register(fn *Function) {
	r.funcs[fn.Name] = fn
}

// Lookup finds a function by name.
func (r *Registry) Lookup(name string) (*Function, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// MethodTables holds the built-in method tables for each elementary Kind
// (spec §4.5: "String|Bool|Integer|Array|Dict → built-in method table").
type MethodTables struct {
	tables map[value.Kind]map[string]*Function
}

// NewMethodTables builds an empty set of method tables.
func NewMethodTables() *MethodTables {
	return &MethodTables{tables: make(map[value.Kind]map[string]*Function)}
}

// Register adds a method to kind's table.
func (m *MethodTables) Register(kind value.Kind, fn *Function) {
	t, ok := m.tables[kind]
	if !ok {
		t = make(map[string]*Function)
		m.tables[kind] = t
	}
	t[fn.Name] = fn
}

// Lookup finds a method by (kind, name).
func (m *MethodTables) Lookup(kind value.Kind, name string) (*Function, bool) {
	t, ok := m.tables[kind]
	if !ok {
		return nil, false
	}
	fn, ok := t[name]
	return fn, ok
}

// ValidateDeps carries the feature-policy and warning collaborators the
// keyword gate needs, kept out of Validator itself so Validator stays a
// plain value describable entirely at registration time.
type ValidateDeps struct {
	Subproject         string
	Policy             *featurepolicy.Policy
	WarnUnknownKeyword func(name string)
}

// Validate runs v's positional and keyword gates, returning the reshaped
// positional list and the completed keyword map.
func Validate(v *Validator, pos []value.Value, kw map[string]value.Value, deps ValidateDeps) ([]value.Value, map[string]value.Value, error) {
	if v == nil {
		return pos, kw, nil
	}
	shapedPos := pos
	var err error
	if v.Positional != nil {
		shapedPos, err = typecheck.CheckPositional(pos, *v.Positional)
		if err != nil {
			return nil, nil, err
		}
	}
	kwOut := kw
	if v.Keywords != nil {
		kwOut, err = typecheck.CheckKeywords(deps.Subproject, kw, v.Keywords, deps.Policy, deps.WarnUnknownKeyword)
		if err != nil {
			return nil, nil, err
		}
	}
	return shapedPos, kwOut, nil
}
