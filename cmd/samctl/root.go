package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gopherlabs/suffixautomaton/automaton"
	"github.com/gopherlabs/suffixautomaton/internal/config"
)

// cliOptions holds the flags shared by the root REPL and the batch
// subcommand.
type cliOptions struct {
	configPath string
	backend    string
	eagerIndex bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "samctl",
		Short:         "Build a suffix automaton from stdin and query it interactively",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file (optional)")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "transition table backend: dense or sparse (overrides --config)")
	root.PersistentFlags().BoolVar(&opts.eagerIndex, "eager-index", false, "build the suffix-link index immediately after construction")

	root.AddCommand(newBatchCmd(opts))
	return root
}

// resolve merges a config file (if any) with explicit flags, flags
// taking precedence, and returns the automaton options to build with.
func (o *cliOptions) resolve() ([]automaton.Option, bool, error) {
	cfg := config.Config{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, false, err
		}
		cfg = loaded
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	eager := cfg.EagerIndex || o.eagerIndex

	backend, err := cfg.ResolveBackend()
	if err != nil {
		return nil, false, err
	}
	return []automaton.Option{automaton.WithBackend(backend)}, eager, nil
}

// readBody reads the text to construct the automaton from: the first
// line of stdin, without its line terminator.
func readBody(r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return []byte(sc.Text()), nil
}

func buildFromStdin(cmd *cobra.Command, opts *cliOptions) (*automaton.Automaton, []byte, error) {
	fmt.Fprintln(cmd.OutOrStdout(), "Enter the string to construct a suffix automaton:")
	body, err := readBody(cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}

	automatonOpts, eager, err := opts.resolve()
	if err != nil {
		return nil, nil, err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Constructing automaton...")
	a := automaton.Build(body, automatonOpts...)
	if eager {
		a.BuildIndex()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "String: %q is of size %d and its automaton has %d states\n", body, len(body), a.NumStates())
	return a, body, nil
}
