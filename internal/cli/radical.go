package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/exactnum"
)

// NewRadicalCommand creates the root command, which extracts exact n-th roots.
func NewRadicalCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		a []int64
		n int64
	)

	cmd := &cobra.Command{
		Use:   "root",
		Short: "Exact n-th root of a rational",
		Long: `Compute the n-th root of --a exactly.

Fails with E003 when the root is not rational, e.g. the square root of 2.`,
		Example: `  exactnum root --a 8,27 --n 3
  exactnum root --a -32 --n 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			r, err := rationalFlag("a", a)
			if err != nil {
				return report(formatter, err)
			}
			rootOpts.logger().Debug("root", "a", r.String(), "n", n)
			root, err := exactnum.Root(r, n)
			if err != nil {
				return report(formatter, err)
			}
			return formatter.Success(OpResult{
				Op:       "root",
				Operands: []string{r.String(), strconv.FormatInt(n, 10)},
				Result:   root.String(),
			})
		},
	}

	cmd.Flags().Int64SliceVar(&a, "a", nil, "radicand as n or n,d")
	cmd.Flags().Int64Var(&n, "n", 2, "root degree")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}
