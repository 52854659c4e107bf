package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigPath string

	Config *Config
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the ratio CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ratio",
		Short: "Inspect rational numbers written as a/b",
		Long: `Parse, normalize, classify and compare rational numbers.

Values are read as "numerator/denominator" and kept exactly as written
unless normalization is requested.`,
		SilenceUsage:  true,
		SilenceErrors: true, // Execute reports errors that commands did not
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaultFormat, "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", os.Getenv(ConfigEnv), "TOML config file")

	// Add subcommands
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewEqualCommand(opts))
	cmd.AddCommand(NewDigitsCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))

	return cmd
}

// setup loads the config file, resolves the output format and builds the
// logger. It runs before every subcommand.
func (opts *RootOptions) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.Config = cfg
	if opts.ConfigPath != "" {
		opts.Logger.Debug("config loaded", "path", opts.ConfigPath, "format", cfg.Output.Format)
	}

	if !cmd.Flags().Changed("format") {
		opts.Format = cfg.Output.Format
	}
	if !slices.Contains(ValidFormats, opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
	}
	return nil
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// normalizeFlag returns the --normalize flag if given, else the config value.
func (opts *RootOptions) normalizeFlag(cmd *cobra.Command, flag bool) bool {
	if cmd.Flags().Changed("normalize") {
		return flag
	}
	return opts.Config.Parse.Normalize
}

// Execute runs the CLI with the given arguments and streams and returns the
// process exit code. Errors not already written by a command are printed to
// errOut.
func Execute(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return GetExitCode(err)
}
