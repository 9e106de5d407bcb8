// Command bcl is the reference CLI for the interpreter: it drives
// internal/host against golden scenario files (internal/scenario), since
// this module owns evaluation, not parsing (spec.md's Non-goals put the
// lexer/parser out of scope — see SPEC_FULL.md).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/bcl-lang/interp/internal/host"
	"github.com/bcl-lang/interp/internal/scenario"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	root := &cobra.Command{
		Use:   "bcl",
		Short: "Reference CLI for the interpreter",
		Long:  bold("bcl") + " runs and inspects golden scenario files against the interpreter's reference host.",
	}

	root.AddCommand(runCmd(), checkCmd(), replCmd(), reportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file and report its outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			result := scenario.Run(spec)
			for _, w := range result.Warnings {
				fmt.Fprintf(os.Stderr, "%s %s\n", yellow("warning:"), w)
			}
			if result.Passed() {
				fmt.Printf("%s %s\n", green("PASS"), spec.ID)
				return nil
			}
			fmt.Printf("%s %s\n", red("FAIL"), spec.ID)
			if result.Err != nil {
				fmt.Fprintf(os.Stderr, "  %v\n", result.Err)
			}
			for _, m := range result.Mismatch {
				fmt.Printf("  %s\n", m)
			}
			os.Exit(1)
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Load and build a scenario without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := scenario.BuildBlock(spec.Steps); err != nil {
				return fmt.Errorf("%s: %w", spec.ID, err)
			}
			fmt.Printf("%s %s: %d step(s)\n", green("OK"), spec.ID, len(spec.Steps))
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "List the host functions a fresh interpreter exposes, and the capability each requires",
		RunE: func(cmd *cobra.Command, args []string) error {
			interp := host.New(os.Stdout, "")
			caps := interp.Registry.Capabilities()
			names := make([]string, 0, len(caps))
			for name := range caps {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if cap := caps[name]; cap != "" {
					fmt.Printf("%-20s %s\n", name, cyan(cap))
				} else {
					fmt.Printf("%-20s %s\n", name, "-")
				}
			}
			return nil
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively assign variables and run calls/methods against a live environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}
}

// runREPL reads one scenario Step per line, expressed as YAML flow syntax
// (e.g. `{call: {func: project, args: [{lit: demo}]}}`), evaluates
// it against a persistent host.Interpreter, and prints the resulting
// binding — there being no lexer/parser in this module, the REPL speaks
// the same structural form internal/scenario does (spec.md Non-goals).
func runREPL() error {
	fmt.Printf("%s - interactive scenario shell. One step per line; :quit to exit.\n", bold("bcl repl"))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	interp := host.New(os.Stdout, "")
	interp.Eval.Warn = func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "%s %s\n", yellow("warning:"), fmt.Sprintf(format, args...))
	}

	for {
		input, err := line.Prompt(">>> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err.Error() == "EOF" {
				fmt.Println("\ngoodbye")
				return nil
			}
			return err
		}
		line.AppendHistory(input)
		if input == ":quit" || input == ":q" {
			return nil
		}
		if input == "" {
			continue
		}

		step, err := scenario.ParseStepYAML(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("parse error:"), err)
			continue
		}
		node, err := scenario.BuildBlock([]scenario.Step{*step})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("build error:"), err)
			continue
		}
		v, _, err := interp.Eval.Eval(node)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
			continue
		}
		fmt.Printf("%s\n", cyan(v.String()))
	}
}
