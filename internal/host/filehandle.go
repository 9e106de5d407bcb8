package host

import "github.com/bcl-lang/interp/internal/value"

// FileHandle builds a value.File from a path argument. It is registered as
// a plain dispatch.Function under the name "file_handle" rather than
// through RegisterHostType, since value.File is its own Value variant
// (KindFile), not a HostObject (spec §3).
func FileHandle(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
	name := ""
	if len(pos) > 0 {
		if s, ok := pos[0].(value.Str); ok {
			name = s.S
		}
	}
	return value.File{Name: name, Handle: nil}, nil
}
