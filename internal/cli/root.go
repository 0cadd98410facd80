package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/exactnum/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Digits     int    // decimal places for polar forms
	ConfigPath string
	Logger     *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the exactnum CLI.
func NewRootCommand() *cobra.Command {
	def := config.Default()
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "exactnum",
		Short: "Exact rational and complex arithmetic",
		Long: `Exact arithmetic on rationals and on complex numbers with rational parts.

Operands are given as n or n,d (numerator,denominator). Results are printed
exactly; polar forms are rounded to --digits places.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd.Flags().Changed); err != nil {
				// --format itself may be the bad value, so errors here are text on stderr.
				return report(&OutputFormatter{Format: "text", Writer: cmd.ErrOrStderr()}, err)
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			opts.Logger.Debug("options", "format", opts.Format, "digits", opts.Digits, "config", opts.ConfigPath)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", def.Verbose, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", def.Format, "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", def.Digits, "decimal places for trig/exp forms")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML or TOML file with default settings")

	cmd.AddCommand(NewRationalCommand(opts))
	cmd.AddCommand(NewRadicalCommand(opts))
	cmd.AddCommand(NewFloatCommand(opts))
	cmd.AddCommand(NewComplexCommand(opts))
	cmd.AddCommand(NewFormCommand(opts))

	return cmd
}

// resolve overlays ConfigPath, if set, under any flag the user passed
// explicitly and validates the result.
func (o *RootOptions) resolve(changed func(string) bool) error {
	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", &ConfigError{Path: o.ConfigPath, Err: err})
		}
		if !changed("format") {
			o.Format = cfg.Format
		}
		if !changed("digits") {
			o.Digits = cfg.Digits
		}
		if !changed("verbose") {
			o.Verbose = cfg.Verbose
		}
	}
	if !isValidFormat(o.Format) {
		return usageError("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}
	if o.Digits < 0 || o.Digits > config.MaxDigits {
		return usageError("invalid digits %d: must be between 0 and %d", o.Digits, config.MaxDigits)
	}
	return nil
}

// formatter builds the OutputFormatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}

// logger returns the configured logger, or one that discards everything when
// a subcommand runs without the root (as in tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

