package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/exactnum"
)

type complexOptions struct {
	re, im   []int64
	op       string
	ore, oim []int64
	b        []int64
	bInt     int64
	n        int64
}

// NewComplexCommand creates the complex command.
func NewComplexCommand(rootOpts *RootOptions) *cobra.Command {
	o := &complexOptions{}

	cmd := &cobra.Command{
		Use:   "complex",
		Short: "Arithmetic on complex numbers with rational parts",
		Long: `Print --re + --im i, or apply --op to it.

Binary operations take a complex (--ore/--oim), a rational (--b) or an
integer (--b-int) right operand. pow takes an integer exponent --n and is
computed in floating point, so its result is rounded to 10 places. abs and
arg print the modulus and phase rounded to --digits places, as in the
trig and exp forms.`,
		Example: `  exactnum complex --re 1 --im 2 --op div --ore 3 --oim 4
  exactnum complex --re 1 --im 1 --op pow --n -1
  exactnum complex --re 1,2 --im -3,4 --op conj`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplex(rootOpts, o, cmd)
		},
	}

	cmd.Flags().Int64SliceVar(&o.re, "re", nil, "real part as n or n,d")
	cmd.Flags().Int64SliceVar(&o.im, "im", nil, "imaginary part as n or n,d")
	cmd.Flags().StringVar(&o.op, "op", "", "operation (add|sub|mul|div|pow|eq|neg|conj|inv|abs|arg)")
	cmd.Flags().Int64SliceVar(&o.ore, "ore", nil, "real part of a complex right operand")
	cmd.Flags().Int64SliceVar(&o.oim, "oim", nil, "imaginary part of a complex right operand")
	cmd.Flags().Int64SliceVar(&o.b, "b", nil, "rational right operand as n or n,d")
	cmd.Flags().Int64Var(&o.bInt, "b-int", 0, "integer right operand")
	cmd.Flags().Int64Var(&o.n, "n", 0, "integer exponent for pow")
	cmd.MarkFlagsOneRequired("re", "im")
	cmd.MarkFlagsMutuallyExclusive("b", "b-int", "ore")
	cmd.MarkFlagsMutuallyExclusive("b", "b-int", "oim")

	return cmd
}

func runComplex(opts *RootOptions, o *complexOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	z, err := complexFlag("re", o.re, "im", o.im)
	if err != nil {
		return report(formatter, err)
	}
	w, err := o.operand(cmd)
	if err != nil {
		return report(formatter, err)
	}
	opts.logger().Debug("complex", "op", o.op, "z", z.String(), "w", describe(w))

	result, err := applyComplex(o.op, z, w, opts.Digits)
	if err != nil {
		return report(formatter, err)
	}
	res := OpResult{Op: o.op, Operands: []string{z.String()}, Result: result}
	if w != nil {
		res.Operands = append(res.Operands, describe(w))
	}
	return formatter.Success(res)
}

var unaryComplexOps = map[string]bool{"": true, "neg": true, "conj": true, "inv": true, "abs": true, "arg": true}

// operand picks the right operand for a binary --op. pow always takes --n.
func (o *complexOptions) operand(cmd *cobra.Command) (exactnum.Operand, error) {
	set := changedFlags(cmd, "ore", "oim", "b", "b-int")
	switch {
	case o.op == "pow":
		if len(set) > 0 {
			return nil, usageError("--op pow takes its exponent from --n, not --%s", set[0])
		}
		return exactnum.Int(o.n), nil
	case unaryComplexOps[o.op]:
		if len(set) > 0 {
			return nil, usageError("--%s given without a binary --op", set[0])
		}
		return nil, nil
	case len(set) == 0:
		return nil, usageError("--op %s needs --ore/--oim, --b or --b-int", o.op)
	}
	switch set[0] {
	case "b":
		return rationalFlag("b", o.b)
	case "b-int":
		return exactnum.Int(o.bInt), nil
	default:
		return complexFlag("ore", o.ore, "oim", o.oim)
	}
}

func applyComplex(op string, z exactnum.Complex, w exactnum.Operand, digits int) (string, error) {
	var (
		r   exactnum.Complex
		err error
	)
	switch op {
	case "":
		return z.String(), nil
	case "add":
		r, err = z.Add(w)
	case "sub":
		r, err = z.Sub(w)
	case "mul":
		r, err = z.Mul(w)
	case "div":
		r, err = z.Div(w)
	case "pow":
		r, err = z.Pow(w)
	case "eq":
		return strconv.FormatBool(z.Equal(w)), nil
	case "neg":
		r = z.Neg()
	case "conj":
		r = z.Conj()
	case "inv":
		r, err = z.Inv()
	case "abs":
		return z.AbsString(digits), nil
	case "arg":
		return z.ArgString(digits), nil
	default:
		return "", usageError("unknown operation %q: must be one of add, sub, mul, div, pow, eq, neg, conj, inv, abs, arg", op)
	}
	if err != nil {
		return "", err
	}
	return r.String(), nil
}
