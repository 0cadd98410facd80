package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/exactnum"
)

type rationalOptions struct {
	a      []int64
	op     string
	b      []int64
	bInt   int64
	bFloat float64
}

// NewRationalCommand creates the rational command.
func NewRationalCommand(rootOpts *RootOptions) *cobra.Command {
	o := &rationalOptions{}

	cmd := &cobra.Command{
		Use:   "rational",
		Short: "Normalize a rational or combine it with a second operand",
		Long: `Normalize --a, or apply --op to --a and one right operand.

The right operand is a rational (--b n,d), an integer (--b-int) or a float
(--b-float, rounded to 10 decimal places first). pow accepts a rational
exponent p/q and fails when the result is irrational.`,
		Example: `  exactnum rational --a 6,-8
  exactnum rational --a 1,2 --op add --b 1,3
  exactnum rational --a 4,9 --op pow --b -1,2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRational(rootOpts, o, cmd)
		},
	}

	cmd.Flags().Int64SliceVar(&o.a, "a", nil, "left operand as n or n,d")
	cmd.Flags().StringVar(&o.op, "op", "", "operation (add|sub|mul|div|pow|eq); empty prints --a normalized")
	cmd.Flags().Int64SliceVar(&o.b, "b", nil, "rational right operand as n or n,d")
	cmd.Flags().Int64Var(&o.bInt, "b-int", 0, "integer right operand")
	cmd.Flags().Float64Var(&o.bFloat, "b-float", 0, "float right operand")
	_ = cmd.MarkFlagRequired("a")
	cmd.MarkFlagsMutuallyExclusive("b", "b-int", "b-float")

	return cmd
}

func runRational(opts *RootOptions, o *rationalOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	a, err := rationalFlag("a", o.a)
	if err != nil {
		return report(formatter, err)
	}
	b, err := o.operand(cmd)
	if err != nil {
		return report(formatter, err)
	}
	logger.Debug("rational", "op", o.op, "a", a.String(), "b", describe(b))

	result, err := applyRational(o.op, a, b)
	if err != nil {
		return report(formatter, err)
	}
	res := OpResult{Op: o.op, Operands: []string{a.String()}, Result: result}
	if b != nil {
		res.Operands = append(res.Operands, describe(b))
	}
	return formatter.Success(res)
}

// operand picks the right operand from whichever --b flag was set.
func (o *rationalOptions) operand(cmd *cobra.Command) (exactnum.Operand, error) {
	set := changedFlags(cmd, "b", "b-int", "b-float")
	if len(set) == 0 {
		if o.op != "" {
			return nil, usageError("--op %s needs --b, --b-int or --b-float", o.op)
		}
		return nil, nil
	}
	if o.op == "" {
		return nil, usageError("--%s given without --op", set[0])
	}
	switch set[0] {
	case "b-int":
		return exactnum.Int(o.bInt), nil
	case "b-float":
		return exactnum.Real(o.bFloat), nil
	default:
		return rationalFlag("b", o.b)
	}
}

func applyRational(op string, a exactnum.Rational, b exactnum.Operand) (string, error) {
	var (
		r   exactnum.Rational
		err error
	)
	switch op {
	case "":
		return a.String(), nil
	case "add":
		r, err = a.Add(b)
	case "sub":
		r, err = a.Sub(b)
	case "mul":
		r, err = a.Mul(b)
	case "div":
		r, err = a.Div(b)
	case "pow":
		r, err = a.Pow(b)
	case "eq":
		return strconv.FormatBool(a.Equal(b)), nil
	default:
		return "", usageError("unknown operation %q: must be one of add, sub, mul, div, pow, eq", op)
	}
	if err != nil {
		return "", err
	}
	return r.String(), nil
}
