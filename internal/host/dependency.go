package host

import (
	"github.com/bcl-lang/interp/internal/value"
)

// Dependency is the canonical "disabler on not-found" host object (spec
// §4.6): a lookup that may fail produces a Dependency with found() ==
// false instead of raising, letting `disabler: true` on the registering
// function convert it to a Disabler automatically (dispatch.CallMethod /
// disablerIfNotFound).
type Dependency struct {
	value.HostObjectKind
	name      string
	version   string
	found     bool
	subproj   string
}

// NewDependency builds a resolved dependency.
func NewDependency(name, version, subproject string) *Dependency {
	return &Dependency{name: name, version: version, found: true, subproj: subproject}
}

// NewNotFoundDependency builds an unresolved dependency — found() is
// false, and any function returning it with `disabler: true` set will have
// its result replaced by value.Disabler.
func NewNotFoundDependency(name, subproject string) *Dependency {
	return &Dependency{name: name, subproj: subproject}
}

func (d *Dependency) String() string {
	if !d.found {
		return "<dependency " + d.name + ": not found>"
	}
	return "<dependency " + d.name + " " + d.version + ">"
}

func (d *Dependency) Identity() string    { return "dependency:" + d.name }
func (d *Dependency) Subproject() string  { return d.subproj }
func (d *Dependency) Mutable() bool       { return false }
func (d *Dependency) Clone() value.HostObject { return d }

func (d *Dependency) Method(name string) (value.HostMethod, bool) {
	switch name {
	case "found":
		return value.HostMethod{Fn: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Bool{B: d.found}, nil
		}}, true
	case "name":
		return value.HostMethod{Fn: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			return value.Str{S: d.name}, nil
		}}, true
	case "version":
		return value.HostMethod{Fn: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			if !d.found {
				return value.Str{S: "unknown"}, nil
			}
			return value.Str{S: d.version}, nil
		}}, true
	default:
		return value.HostMethod{}, false
	}
}
