package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/exactnum"
)

// NewFloatCommand creates the float command.
func NewFloatCommand(rootOpts *RootOptions) *cobra.Command {
	var x float64

	cmd := &cobra.Command{
		Use:   "float",
		Short: "Convert a float to a rational",
		Long: `Convert --x to a rational by rounding it to 10 decimal places.

The conversion is lossy: 0.75 becomes 3/4, 1/3 becomes 3333333333/10000000000.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			rootOpts.logger().Debug("float", "x", x)
			r, err := exactnum.FromFloat(x)
			if err != nil {
				return report(formatter, err)
			}
			return formatter.Success(OpResult{
				Op:       "float",
				Operands: []string{strconv.FormatFloat(x, 'g', -1, 64)},
				Result:   r.String(),
			})
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "value to convert")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}
