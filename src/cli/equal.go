package cli

import (
	"github.com/spf13/cobra"

	"ratio/src/numeric/rational"
)

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "equal <a/b> <c/d>",
		Short: "Compare two rationals field by field",
		Long: `Compare the stored numerators and denominators of two rationals.

1/2 and 2/4 differ unless --normalize is given. Exits with status 1 when
the values differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEqual(rootOpts, rootOpts.normalizeFlag(cmd, normalize), args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "normalize both sides before comparing")

	return cmd
}

func runEqual(opts *RootOptions, normalize bool, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	var sides [2]*rational.Rational
	for i, arg := range args {
		r, err := rational.Parse(arg)
		if err != nil {
			return reportParseError(opts, formatter, arg, err)
		}
		if normalize {
			r.Normalize()
		}
		sides[i] = r
	}

	result := Comparison{Left: sides[0], Right: sides[1], Equal: sides[0].Equal(sides[1])}
	opts.Logger.Debug("compared", "left", result.Left.String(), "right", result.Right.String(), "equal", result.Equal)
	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Equal {
		return valuesDiffer()
	}
	return nil
}
