// Package argreduce evaluates an ast.ArgumentNode into a positional value
// list and a keyword value map (spec §4.3): duplicate-key policy and
// `kwargs:` expansion live here, ahead of type checking.
package argreduce

import (
	"github.com/bcl-lang/interp/internal/ast"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

// EvalFunc evaluates a single expression to a Value. The evaluator passes
// its own expression-evaluation entry point here so this package stays
// free of a dependency on the tree walker.
type EvalFunc func(ast.Expr) (value.Value, error)

// KeyResolver resolves a keyword key expression to its string name. The
// default resolver only accepts an ast.Id (the common `name: value` case);
// the dict-literal path additionally allows arbitrary expressions that
// evaluate to a String (spec §4.2 Dict, §4.3 item 3).
type KeyResolver func(key ast.Expr, eval EvalFunc) (string, error)

// DefaultKeyResolver accepts only an identifier-name node.
func DefaultKeyResolver(key ast.Expr, _ EvalFunc) (string, error) {
	id, ok := key.(*ast.Id)
	if !ok {
		return "", errors.NewInvalidArguments(errors.ARG002, "keyword argument name must be an identifier")
	}
	return id.Name, nil
}

// DictKeyResolver additionally accepts any expression evaluating to a
// String, for `{expr: value}` dict literals under DSL version >= 0.53.0.
func DictKeyResolver(key ast.Expr, eval EvalFunc) (string, error) {
	if id, ok := key.(*ast.Id); ok {
		// A bare identifier in a dict literal is still a string literal
		// key by convention unless it resolves to a variable; the caller
		// (evaluator) chooses which resolver to pass based on DSL version,
		// so here we just fall through to full evaluation for uniformity
		// with arbitrary key expressions.
		_ = id
	}
	v, err := eval(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(value.Str)
	if !ok {
		return "", errors.NewInvalidArguments(errors.ARG002, "dict key must evaluate to a string, got %s", v.Kind())
	}
	return s.S, nil
}

// Reduced is the output of Reduce: a positional list and a keyword map.
// KeyOrder records the order keywords were first inserted (kwargs-expanded
// entries appended at the end), for callers that need it — e.g. a dict
// literal rebuilding an order-preserving value.Dict from Keywords.
type Reduced struct {
	Positional []value.Value
	Keywords   map[string]value.Value
	KeyOrder   []string
}

// DuplicateKeyError builds the error raised when a key resolves to a name
// already seen earlier in the same argument list.
type DuplicateKeyError func(name string) error

func defaultDuplicateKeyError(name string) error {
	return errors.NewInvalidArguments(errors.ARG002, "duplicate keyword argument %q", name)
}

// Reduce evaluates node's arguments in order, applying the duplicate-key
// and kwargs-expansion rules of spec §4.3. onDuplicateKey overrides the
// error raised for a repeated key, mirroring the original's
// reduce_arguments(..., duplicate_key_error=...) parameter — pass nothing
// for the default keyword-call behavior (ARG002).
func Reduce(node *ast.ArgumentNode, eval EvalFunc, resolveKey KeyResolver, onDuplicateKey ...DuplicateKeyError) (*Reduced, error) {
	dupErr := defaultDuplicateKeyError
	if len(onDuplicateKey) > 0 && onDuplicateKey[0] != nil {
		dupErr = onDuplicateKey[0]
	}

	if node == nil {
		return &Reduced{Keywords: map[string]value.Value{}}, nil
	}
	if node.IncorrectOrder() {
		return nil, errors.NewInvalidArguments(errors.ARG001, "all positional arguments must be before named arguments")
	}

	positional := make([]value.Value, 0, len(node.Positional))
	for _, expr := range node.Positional {
		v, err := eval(expr)
		if err != nil {
			return nil, err
		}
		positional = append(positional, v)
	}

	kwargs := make(map[string]value.Value, len(node.Keywords))
	order := make([]string, 0, len(node.Keywords))
	for _, kw := range node.Keywords {
		name, err := resolveKey(kw.Key, eval)
		if err != nil {
			return nil, err
		}
		if _, dup := kwargs[name]; dup {
			return nil, dupErr(name)
		}
		v, err := eval(kw.Value)
		if err != nil {
			return nil, err
		}
		kwargs[name] = v
		order = append(order, name)
	}

	order, err := expandDefaultKwargs(kwargs, order)
	if err != nil {
		return nil, err
	}

	return &Reduced{Positional: positional, Keywords: kwargs, KeyOrder: order}, nil
}

// expandDefaultKwargs implements spec §4.3 item 5: a keyword literally
// named `kwargs` mapping to a Dict is removed and merged into the keyword
// map. A conflict with an explicit keyword, or a nested `kwargs` key
// inside the expansion, is an error. Per §9 Open Questions this is
// deliberately keyed on the literal name "kwargs" everywhere, matching the
// original's behavior rather than reserving it more broadly.
func expandDefaultKwargs(kwargs map[string]value.Value, order []string) ([]string, error) {
	raw, ok := kwargs["kwargs"]
	if !ok {
		return order, nil
	}
	d, ok := raw.(*value.Dict)
	if !ok {
		// Not a dict: leave it as a normal (if oddly named) keyword.
		return order, nil
	}
	delete(kwargs, "kwargs")
	for i, name := range order {
		if name == "kwargs" {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}

	for _, k := range d.Keys() {
		if k == "kwargs" {
			return nil, errors.NewInvalidArguments(errors.ARG004, "kwargs argument must not contain a nested 'kwargs' key")
		}
		if _, conflict := kwargs[k]; conflict {
			return nil, errors.NewInvalidArguments(errors.ARG003, "got multiple values for keyword argument %q", k)
		}
		v, _ := d.Get(k)
		kwargs[k] = v
		order = append(order, k)
	}
	return order, nil
}
