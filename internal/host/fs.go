package host

import (
	"os"
	"path/filepath"

	"github.com/bcl-lang/interp/internal/dispatch"
	"github.com/bcl-lang/interp/internal/errors"
	"github.com/bcl-lang/interp/internal/value"
)

// FSSandbox resolves read_file/write_file/file_exists paths relative to
// Root when Root is non-empty, the same scheme as the teacher's
// AILANG_FS_SANDBOX env var. The path is joined onto Root and not checked
// further, so a path containing ".." can resolve outside Root.
type FSSandbox struct {
	Root string
}

func (s FSSandbox) resolve(path string) string {
	if s.Root == "" {
		return path
	}
	return filepath.Join(s.Root, path)
}

func stringArg(pos []value.Value, i int, fn string) (string, error) {
	if i >= len(pos) {
		return "", errors.NewInvalidCode(errors.HST002, "%s: expected at least %d argument(s)", fn, i+1)
	}
	s, ok := pos[i].(value.Str)
	if !ok {
		return "", errors.NewInvalidCode(errors.HST002, "%s: argument %d must be a string, got %s", fn, i+1, pos[i].Kind())
	}
	return s.S, nil
}

// RegisterFS wires read_file/write_file/file_exists into funcs under the
// "FS" capability, grounded on the teacher's effects.fsReadFile/fsWriteFile/
// fsExists (internal/effects/fs.go) — rebuilt against value.Value/
// dispatch.Function instead of the teacher's own eval.Value, since that
// package is specific to AILANG's type system and was deleted (see
// DESIGN.md).
func RegisterFS(reg *Registry, sandbox FSSandbox) {
	reg.RegisterFunction("FS", &dispatch.Function{
		Name: "read_file",
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			path, err := stringArg(pos, 0, "read_file")
			if err != nil {
				return nil, err
			}
			content, err := os.ReadFile(sandbox.resolve(path))
			if err != nil {
				return nil, errors.NewInvalidCode(errors.HST003, "read_file: %v", err)
			}
			return value.Str{S: string(content)}, nil
		},
	})

	reg.RegisterFunction("FS", &dispatch.Function{
		Name: "write_file",
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			path, err := stringArg(pos, 0, "write_file")
			if err != nil {
				return nil, err
			}
			content, err := stringArg(pos, 1, "write_file")
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(sandbox.resolve(path), []byte(content), 0644); err != nil {
				return nil, errors.NewInvalidCode(errors.HST003, "write_file: %v", err)
			}
			return value.Null{}, nil
		},
	})

	reg.RegisterFunction("FS", &dispatch.Function{
		Name: "file_exists",
		Call: func(pos []value.Value, kw map[string]value.Value) (value.Value, error) {
			path, err := stringArg(pos, 0, "file_exists")
			if err != nil {
				return nil, err
			}
			_, statErr := os.Stat(sandbox.resolve(path))
			return value.Bool{B: statErr == nil}, nil
		},
	})
}
