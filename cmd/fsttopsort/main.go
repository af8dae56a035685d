// Command fsttopsort topologically sorts an automaton.
//
//	fsttopsort [in.fst [out.fst]]
//
// The input is read from in.fst, or stdin when it is absent or "-"; the
// result goes to out.fst, or stdout when it is absent or "-". Both use the
// YAML text format of package fst. A cyclic input is written back
// unchanged after a WARNING. The exit status is 0 when the output was
// written and 1 otherwise.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/fstlog"
	"github.com/katalvlaran/wfst/weight"
)

// sorter reads an automaton of one weight type, sorts it and writes it.
// cyclic is called when the input has a cycle.
type sorter func(data []byte, out io.Writer, cyclic func()) error

func sortAs[W fst.Weight[W]](data []byte, out io.Writer, cyclic func()) error {
	v, err := fst.ReadBytes[W](data)
	if err != nil {
		return err
	}
	acyclic, err := fst.TopSort(v)
	if err != nil {
		return err
	}
	if !acyclic {
		cyclic()
	}

	return v.Write(out)
}

func register[W fst.Weight[W]](m map[string]sorter) {
	var w W
	m[w.Type()] = sortAs[W]
}

// sorters maps a weight_type header to its sorter.
var sorters = func() map[string]sorter {
	m := make(map[string]sorter)
	register[weight.Tropical](m)
	register[weight.Log](m)
	register[weight.MinMax](m)
	register[weight.LeftString](m)
	register[weight.RightString](m)
	return m
}()

var errUnknownWeightType = errors.New("unknown weight type")

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var verbosity int
	cmd := &cobra.Command{
		Use:   "fsttopsort [in.fst [out.fst]]",
		Short: "Topologically sorts an FST",
		Long: `Renumbers the states of an acyclic FST so that every arc leads to a
higher state ID. A cyclic FST is written back unchanged.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbosity < 0 {
				return fmt.Errorf("--verbosity %d: must be >= 0", verbosity)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			log := fstlog.New(fstlog.WithOutput(stderr), fstlog.WithVerbosity(verbosity))
			defer func() { _ = log.Sync() }()

			if err := topsort(cmd.Name(), args, stdin, stdout, log); err != nil {
				log.Error(err.Error())
				return err
			}
			return nil
		},
	}
	// Help and usage go to stderr; stdout carries only the automaton.
	cmd.SetIn(stdin)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.Flags().IntVarP(&verbosity, "verbosity", "v", 0, "log detail level")

	return cmd
}

func topsort(prog string, args []string, stdin io.Reader, stdout io.Writer, log *fstlog.Logger) error {
	// 1. Resolve input and output names.
	inName, outName := "", ""
	if len(args) > 0 && args[0] != "-" {
		inName = args[0]
	}
	if len(args) > 1 && args[1] != "-" {
		outName = args[1]
	}

	// 2. Read the whole input and pick the weight type.
	data, err := readInput(inName, stdin)
	if err != nil {
		return err
	}
	typ, err := fst.PeekWeightType(data)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(inName), err)
	}
	sortFn, ok := sorters[typ]
	if !ok {
		return fmt.Errorf("%s: %w %q", displayName(inName), errUnknownWeightType, typ)
	}
	log.VInfo(1, "read input", zap.String("file", displayName(inName)), zap.String("weight_type", typ))

	// 3. Sort into a buffer so a failed read leaves no partial output.
	var buf bytes.Buffer
	cyclic := func() { log.Warning(prog + ": Input FST is cyclic") }
	if err := sortFn(data, &buf, cyclic); err != nil {
		return fmt.Errorf("%s: %w", displayName(inName), err)
	}

	// 4. Write the result.
	return writeOutput(outName, stdout, buf.Bytes())
}

func displayName(name string) string {
	if name == "" {
		return "standard input"
	}

	return name
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(name)
}

func writeOutput(name string, stdout io.Writer, data []byte) error {
	if name == "" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(name, data, 0o644)
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
