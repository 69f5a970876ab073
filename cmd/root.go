// file:sfx/cmd/root.go
package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rskv-p/sfx/pkg/x_cfg"
	"github.com/rskv-p/sfx/pkg/x_log"
	"github.com/rskv-p/sfx/pkg/x_src"
	"github.com/rskv-p/sfx/pkg/x_tree"

	"github.com/spf13/cobra"
)

// app carries flag values and the resolved config between cobra hooks.
type app struct {
	cfgPath  string
	radix    int
	alphabet string
	input    string
	debug    bool
	logLevel string
	show     bool

	cfg *x_cfg.Config
}

// NewRootCmd builds the sfx command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sfx",
		Short:         "Compressed suffix trie builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return x_log.Close()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "JSON config file (default $"+x_cfg.EnvConfigPath+")")
	f.IntVar(&a.radix, "radix", x_cfg.DefaultRadix, "alphabet radix")
	f.StringVar(&a.alphabet, "alphabet", "", "alphabet symbols in index order (default ACGT$)")
	f.StringVar(&a.input, "input", "", "pattern file, - for stdin")
	f.BoolVar(&a.debug, "debug", false, "read the pattern from the debug input file")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	f.BoolVar(&a.show, "show-config", false, "print the resolved config to stderr")

	root.AddCommand(
		newEdgesCmd(a),
		newDumpCmd(a),
		newStatsCmd(a),
		newFindCmd(a),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	defer recoverPanic()
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// recoverPanic logs a panic with its stacktrace and exits with status 2.
func recoverPanic() {
	if r := recover(); r != nil {
		x_log.Error().Str("stack", string(debug.Stack())).Msgf("panic: %v", r)
		_ = x_log.Close()
		os.Exit(2)
	}
}

// setup loads config, applies explicitly set flags and starts logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := x_cfg.LoadWithFallback(a.cfgPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("radix") {
		cfg.Radix = a.radix
	}
	if f.Changed("alphabet") {
		cfg.Alphabet = a.alphabet
	}
	if f.Changed("input") {
		cfg.Input.Path = a.input
	}
	if f.Changed("debug") {
		cfg.Input.Debug = a.debug
	}
	if f.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.show {
		cfg.Dump(cmd.ErrOrStderr())
	}

	x_log.InitWithConfig(&cfg.Log, "sfx")
	l := x_log.New("cmd")
	cmd.SetContext(x_log.WithLogger(cmd.Context(), &l))
	a.cfg = cfg
	return nil
}

// build constructs the tree from the positional pattern, or from the
// configured input when none is given.
func (a *app) build(cmd *cobra.Command, pattern []string) (*x_tree.SuffixTree, error) {
	src := a.cfg.Input
	if len(pattern) > 0 {
		src.Literal = pattern[0]
	}
	text, err := x_src.Read(src, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	alpha, err := a.cfg.Symbols()
	if err != nil {
		return nil, err
	}
	x_log.From(cmd.Context()).Debug().Str("input", src.Source()).Int("radix", a.cfg.Radix).Msg("building tree")

	return x_tree.Build(text, a.cfg.Radix,
		x_tree.WithAlphabet(alpha),
		x_tree.WithLogger(x_log.New("x_tree")),
	)
}

// styled reports whether w should get lipgloss output.
func styled(w io.Writer) bool { return x_log.IsTerminal(w) }
