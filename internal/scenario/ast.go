package scenario

import "fmt"

// Lit is a YAML-literal value: string, int64, float64, bool, a list of
// Lit, or a string-keyed map of Lit. yaml.v3 decodes scalars into `any`
// for us; toValue (in build.go) converts the decoded shape to a
// value.Value.
type Lit struct {
	v any
}

func (l *Lit) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	l.v = normalizeDecoded(raw)
	return nil
}

// normalizeDecoded recursively converts yaml.v3's decoded map[string]any /
// []any tree into one using Lit at every level, so nested literals compose.
func normalizeDecoded(raw any) any {
	switch t := raw.(type) {
	case map[string]any:
		out := make(map[string]*Lit, len(t))
		for k, v := range t {
			out[k] = &Lit{v: normalizeDecoded(v)}
		}
		return out
	case []any:
		out := make([]*Lit, len(t))
		for i, v := range t {
			out[i] = &Lit{v: normalizeDecoded(v)}
		}
		return out
	default:
		return t
	}
}

// Expr is the tagged union a scenario file uses to build an expression
// tree without a real parser (spec.md's Non-goal keeps the lexer/parser
// external; this is a structural stand-in scoped to what golden scenarios
// need, not a general grammar).
type Expr struct {
	Lit      *Lit             `yaml:"lit"`
	Var      string           `yaml:"var"`
	Array    []*Expr          `yaml:"array"`
	Dict     map[string]*Expr `yaml:"dict"`
	Call     *CallExpr        `yaml:"call"`
	Method   *MethodExpr      `yaml:"method"`
	Compare  *CompareExpr     `yaml:"compare"`
	Arith    *ArithExpr       `yaml:"arith"`
	And      []*Expr          `yaml:"and"`
	Or       []*Expr          `yaml:"or"`
	Not      *Expr            `yaml:"not"`
	Index    *IndexExpr       `yaml:"index"`
	Ternary  *TernaryExpr     `yaml:"ternary"`
	Format   string           `yaml:"format"`
}

type CallExpr struct {
	Func   string           `yaml:"func"`
	Args   []*Expr          `yaml:"args"`
	Kwargs map[string]*Expr `yaml:"kwargs"`
}

type MethodExpr struct {
	Recv   *Expr            `yaml:"recv"`
	Name   string           `yaml:"name"`
	Args   []*Expr          `yaml:"args"`
	Kwargs map[string]*Expr `yaml:"kwargs"`
}

type CompareExpr struct {
	Left  *Expr  `yaml:"left"`
	Op    string `yaml:"op"` // ==, !=, <, <=, >, >=, in, not_in
	Right *Expr  `yaml:"right"`
}

type ArithExpr struct {
	Left  *Expr  `yaml:"left"`
	Op    string `yaml:"op"` // +, -, *, /, %
	Right *Expr  `yaml:"right"`
}

type IndexExpr struct {
	Recv  *Expr `yaml:"recv"`
	Index *Expr `yaml:"index"`
}

type TernaryExpr struct {
	Cond *Expr `yaml:"cond"`
	Then *Expr `yaml:"then"`
	Else *Expr `yaml:"else"`
}

// Step is one statement in a scenario's program.
type Step struct {
	Assign    string           `yaml:"assign"`     // variable name
	PlusOf    string           `yaml:"plus_assign"` // variable name, `+=`
	Value     *Expr            `yaml:"value"`
	Call      *CallExpr        `yaml:"call"`
	Method    *MethodExpr      `yaml:"method"`
	If        []IfClauseStep   `yaml:"if"`
	Else      []Step           `yaml:"else"`
	Foreach   *ForeachStep     `yaml:"foreach"`
	Continue  bool             `yaml:"continue"`
	Break     bool             `yaml:"break"`
}

type IfClauseStep struct {
	Cond *Expr  `yaml:"cond"`
	Then []Step `yaml:"then"`
}

type ForeachStep struct {
	Vars  []string `yaml:"vars"`
	Items *Expr    `yaml:"items"`
	Body  []Step   `yaml:"body"`
}

func (s Step) String() string {
	switch {
	case s.Assign != "":
		return fmt.Sprintf("%s = ...", s.Assign)
	case s.Call != nil:
		return fmt.Sprintf("%s(...)", s.Call.Func)
	default:
		return "<step>"
	}
}
