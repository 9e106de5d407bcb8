package value

// HostMethod is a method implementation attached to a host object's own
// method table (spec §4.5 "HostObject → its own method table"). NoFlatten
// lets the host attach argument-flattening opt-out to specific methods,
// the same opt-out flag function registration uses (spec §4.5).
type HostMethod struct {
	Fn        func(pos []Value, kw map[string]Value) (Value, error)
	NoFlatten bool
}

// HostObject is the interface opaque, host-application-owned values must
// satisfy. The interpreter core never constructs one directly — it only
// dispatches through the interface, per spec §6 ("host object: an opaque
// Value provided by the embedding application").
type HostObject interface {
	Value
	// Identity is a stable, unique label for diagnostics (not equality).
	Identity() string
	// Subproject is the (possibly empty) subproject tag used by the
	// feature-policy layer's §4.2 per-subproject target override.
	Subproject() string
	// Mutable reports whether this object must be deep-copied on `=`
	// assignment (spec §3 Invariant 5, §4.7).
	Mutable() bool
	// Clone deep-copies a mutable host object. Implementations of
	// immutable host objects may return themselves.
	Clone() HostObject
	// Method looks up a method by name on this object's own table.
	Method(name string) (HostMethod, bool)
}

func (HostObjectKind) Kind() Kind { return KindHostObject }

// HostObjectKind is embeddable by host object implementations that want
// Value.Kind() for free; String() and the HostObject-specific methods must
// still be supplied by the embedder.
type HostObjectKind struct{}

// CloneForAssignment implements spec §4.7: mutable host objects are
// deep-copied on `=` assignment; elementary values and the containers
// Array/Dict are immutable at the DSL level, but a mutable host object may
// still be nested transitively inside one, so containers are walked to
// find and copy it.
func CloneForAssignment(v Value) Value {
	switch t := v.(type) {
	case HostObject:
		if t.Mutable() {
			return t.Clone()
		}
		return t
	case Array:
		elems := make([]Value, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = CloneForAssignment(e)
		}
		return Array{Elems: elems}
	case *Dict:
		out := NewDict()
		for _, k := range t.keys {
			out.Set(k, CloneForAssignment(t.vals[k]))
		}
		return out
	default:
		return v
	}
}
