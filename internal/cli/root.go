// SPDX-License-Identifier: MIT

// Package cli wires the matrix library to a cobra command tree.
//
// Matrix operands are JSON arrays of row arrays, given inline, as @path, or
// as "-" for stdin. Results are printed as JSON on the output stream; errors
// and diagnostics go to the error stream through zerolog.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/cofactor/internal/config"
	"github.com/katalvlaran/cofactor/internal/logging"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Streams are the process streams a command tree reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Loader produces the base configuration before flags are applied.
type Loader func() (config.Config, error)

// Persistent flag names.
const (
	flagMaxOrder  = "max-order"
	flagEpsilon   = "epsilon"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagPrecision = "precision"
)

// app is the state shared by every command of one invocation.
type app struct {
	streams Streams
	load    Loader

	log  zerolog.Logger
	cfg  config.Config
	opts []matrix.Option
	src  *sources
	enc  encoder

	// flag targets; applied only when set on the command line
	maxOrder  int
	epsilon   float64
	logLevel  string
	logFormat string
	precision int
}

// NewRootCommand builds the matcalc command tree.
func NewRootCommand(s Streams, load Loader) *cobra.Command {
	root, _ := newRoot(s, load)

	return root
}

// Execute runs the command tree with args and logs a failure once.
func Execute(ctx context.Context, args []string, s Streams, load Loader) error {
	root, a := newRoot(s, load)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return err
	}

	return nil
}

func newRoot(s Streams, load Loader) (*cobra.Command, *app) {
	a := &app{
		streams: s,
		load:    load,
		log:     logging.Fallback(s.Err),
	}

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "Dense matrix arithmetic from the command line",
		Long: `matcalc evaluates sums, products, transposes, minors, cofactors,
determinants, adjugates and inverses of small dense matrices.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	pf := root.PersistentFlags()
	pf.IntVar(&a.maxOrder, flagMaxOrder, matrix.DefaultMaxOrder, "largest order accepted by determinant-based commands")
	pf.Float64Var(&a.epsilon, flagEpsilon, matrix.DefaultEpsilon, "|det| at or below this is treated as singular")
	pf.StringVar(&a.logLevel, flagLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.logFormat, flagLogFormat, config.FormatConsole, "log format (console, json)")
	pf.IntVar(&a.precision, flagPrecision, -1, "decimals printed; -1 prints the shortest exact form")

	root.AddCommand(a.commands()...)

	return root, a
}

// setup merges environment and flags, then builds the logger and codecs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed(flagMaxOrder) {
		cfg.MaxOrder = a.maxOrder
	}
	if flags.Changed(flagEpsilon) {
		cfg.Epsilon = a.epsilon
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed(flagLogFormat) {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed(flagPrecision) {
		cfg.Precision = a.precision
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.streams.Err, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.opts = cfg.MatrixOptions()
	a.src = &sources{stdin: a.streams.In}
	a.enc = encoder{w: a.streams.Out, precision: cfg.Precision}

	a.log.Debug().
		Str("command", cmd.Name()).
		Int("max_order", cfg.MaxOrder).
		Float64("epsilon", cfg.Epsilon).
		Int("precision", cfg.Precision).
		Msg("configured")

	return nil
}
