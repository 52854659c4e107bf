package cli

import (
	"github.com/spf13/cobra"

	"ratio/src/numeric/rational"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "parse <a/b>...",
		Short: "Parse rationals and report whether they are whole",
		Long: `Parse each argument as "numerator/denominator" and print it as stored,
classified as whole (denominator exactly 1) or decimal.

Values are not reduced first, so 4/2 is reported as decimal unless
--normalize is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, rootOpts.normalizeFlag(cmd, normalize), args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "normalize before classifying")

	return cmd
}

func runParse(opts *RootOptions, normalize bool, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	records, err := parseAll(opts, formatter, args, normalize)
	if err != nil {
		return err
	}
	return formatter.Success(records)
}

// parseAll parses every input, stopping at the first failure. The failure is
// written through formatter and returned as an ExitError.
func parseAll(opts *RootOptions, formatter *OutputFormatter, args []string, normalize bool) (Records, error) {
	records := make(Records, 0, len(args))
	for _, arg := range args {
		r, err := rational.Parse(arg)
		if err != nil {
			return nil, reportParseError(opts, formatter, arg, err)
		}
		opts.Logger.Debug("parsed", "input", arg, "value", r.String())
		records = append(records, newRecord(arg, r, normalize))
	}
	return records, nil
}

func reportParseError(opts *RootOptions, formatter *OutputFormatter, input string, err error) error {
	opts.Logger.Debug("parse failed", "input", input, "error", err)
	if ferr := formatter.Error(errorCode(err), err.Error(), map[string]string{"input": input}); ferr != nil {
		return ferr
	}
	return invalidInput(err)
}
