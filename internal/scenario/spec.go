// Package scenario loads YAML-described golden end-to-end programs (spec
// §8) and executes them against a fresh host.Interpreter, checking the
// resulting variable bindings and any expected diagnostics. It is the
// directly-executable form of the worked examples in spec.md §8, replacing
// the teacher's eval_harness (a multi-provider LLM-benchmark runner with no
// equivalent concern here — see DESIGN.md).
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is one golden scenario file: a small program expressed as a tree of
// Steps, the bindings it is expected to produce, and any error it is
// expected to raise instead.
type Spec struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Subproject  string            `yaml:"subproject"`
	Steps       []Step            `yaml:"steps"`
	Expect      map[string]Lit    `yaml:"expect"`
	ExpectError string            `yaml:"expect_error"` // non-empty: an error Code expected instead of Expect
	ExpectWarns []string          `yaml:"expect_warnings"`
	Vars        map[string]Lit    `yaml:"vars"` // pre-set variables before Steps run
}

// ParseStepYAML parses a single Step from a YAML flow-mapping string, the
// form the `bcl repl` command accepts one line at a time.
func ParseStepYAML(line string) (*Step, error) {
	var s Step
	if err := yaml.Unmarshal([]byte(line), &s); err != nil {
		return nil, fmt.Errorf("parse step: %w", err)
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("scenario %s: missing required field id", path)
	}
	return &s, nil
}
