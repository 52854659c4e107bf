package cli

import (
	"math"
	"strings"

	"github.com/spf13/cobra"

	"ratio/src/numeric/rational"
)

// NewDigitsCommand creates the digits command.
func NewDigitsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		numerator   []string
		denominator []string
		normalize   bool
	)

	cmd := &cobra.Command{
		Use:   "digits --numerator 1,2 --denominator 3,4",
		Short: "Build a rational from digit lists",
		Long: `Join each digit list into a number and build numerator/denominator.

Digits are not validated: a list that does not form a number yields NaN
instead of an error. Only a zero denominator is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigits(rootOpts, numerator, denominator, rootOpts.normalizeFlag(cmd, normalize), cmd)
		},
	}

	cmd.Flags().StringSliceVar(&numerator, "numerator", nil, "numerator digits, comma separated")
	cmd.Flags().StringSliceVar(&denominator, "denominator", nil, "denominator digits, comma separated")
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "normalize the result")
	_ = cmd.MarkFlagRequired("numerator")
	_ = cmd.MarkFlagRequired("denominator")

	return cmd
}

func runDigits(opts *RootOptions, numerator, denominator []string, normalize bool, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	input := strings.Join(numerator, "") + "/" + strings.Join(denominator, "")

	r, err := rational.FromDigits(numerator, denominator)
	if err != nil {
		return reportParseError(opts, formatter, input, err)
	}
	if math.IsNaN(r.Numerator) || math.IsNaN(r.Denominator) {
		opts.Logger.Warn("digits did not form a number", "numerator", numerator, "denominator", denominator, "value", r.String())
	}
	return formatter.Success(Records{newRecord(input, r, normalize)})
}
