package host

import (
	"github.com/bcl-lang/interp/internal/value"
)

// Compiler is a mutable host object: adding an argument via add_arg()
// mutates this instance in place, which is exactly why it is Mutable() ==
// true — assigning a Compiler to a new variable must deep-copy it (spec
// §3 Invariant 5, §4.7), so later mutation through one binding doesn't
// leak into the other.
type Compiler struct {
	value.HostObjectKind
	id      string
	subproj string
	args    []string
}

// NewCompiler builds a compiler object with no arguments set.
func NewCompiler(id, subproject string) *Compiler {
	return &Compiler{id: id, subproj: subproject}
}

func (c *Compiler) String() string { return "<compiler " + c.id + ">" }

func (c *Compiler) Identity() string   { return "compiler:" + c.id }
func (c *Compiler) Subproject() string { return c.subproj }
func (c *Compiler) Mutable() bool      { return true }

func (c *Compiler) Clone() value.HostObject {
	cp := &Compiler{id: c.id, subproj: c.subproj, args: append([]string{}, c.args...)}
	return cp
}

func (c *Compiler) Method(name string) (value.HostMethod, bool) {
	switch name {
	case "get_id":
		return value.HostMethod{Fn: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Str{S: c.id}, nil
		}}, true
	case "add_arg":
		return value.HostMethod{Fn: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			for _, p := range pos {
				if s, ok := p.(value.Str); ok {
					c.args = append(c.args, s.S)
				}
			}
			return value.Null{}, nil
		}}, true
	case "get_args":
		return value.HostMethod{Fn: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			elems := make([]value.Value, len(c.args))
			for i, a := range c.args {
				elems[i] = value.Str{S: a}
			}
			return value.Array{Elems: elems}, nil
		}}, true
	default:
		return value.HostMethod{}, false
	}
}
