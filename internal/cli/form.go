package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// FormResult is the payload of the form command.
type FormResult struct {
	Value  string `json:"value"`
	Digits int    `json:"digits"`
	Trig   string `json:"trig,omitempty"`
	Exp    string `json:"exp,omitempty"`
}

func (r FormResult) String() string {
	if r.Trig != "" && r.Exp != "" {
		return "trig: " + r.Trig + "\nexp:  " + r.Exp
	}
	return r.Trig + r.Exp
}

// NewFormCommand creates the form command.
func NewFormCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		re, im []int64
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Trigonometric and exponential forms of a complex number",
		Long: `Render --re + --im i in polar form, rounded to --digits places:

  trig  r*(cos(phi) + isin(phi))
  exp   r*exp(phii)`,
		Example: `  exactnum form --re 1 --im 2 --kind trig
  exactnum --digits 2 form --re 0 --im -5 --kind exp`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)
			z, err := complexFlag("re", re, "im", im)
			if err != nil {
				return report(formatter, err)
			}
			kind = strings.ToLower(kind)
			res := FormResult{Value: z.String(), Digits: rootOpts.Digits}
			switch kind {
			case "trig":
				res.Trig = z.TrigForm(rootOpts.Digits)
			case "exp":
				res.Exp = z.ExpForm(rootOpts.Digits)
			case "all":
				res.Trig = z.TrigForm(rootOpts.Digits)
				res.Exp = z.ExpForm(rootOpts.Digits)
			default:
				return report(formatter, usageError("invalid kind %q: must be trig, exp or all", kind))
			}
			rootOpts.logger().Debug("form", "z", res.Value, "kind", kind, "digits", rootOpts.Digits)
			return formatter.Success(res)
		},
	}

	cmd.Flags().Int64SliceVar(&re, "re", nil, "real part as n or n,d")
	cmd.Flags().Int64SliceVar(&im, "im", nil, "imaginary part as n or n,d")
	cmd.Flags().StringVar(&kind, "kind", "all", "form to print (trig|exp|all)")
	cmd.MarkFlagsOneRequired("re", "im")

	return cmd
}
