package cli

import (
	"github.com/spf13/cobra"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <a/b>...",
		Short: "Reduce rationals to lowest terms",
		Long: `Reduce each argument to lowest terms with the sign on the numerator.

A zero numerator reduces to 0/1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, true, args, cmd)
		},
	}

	return cmd
}
