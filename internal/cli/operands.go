package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/exactnum"
)

// rationalFlag turns an n or n,d flag value into a Rational. An unset flag
// is zero.
func rationalFlag(name string, v []int64) (exactnum.Rational, error) {
	switch len(v) {
	case 0:
		return exactnum.Rational{}, nil
	case 1:
		return exactnum.FromInt(v[0]), nil
	case 2:
		r, err := exactnum.New(v[0], v[1])
		if err != nil {
			return r, flagError(name, err)
		}
		return r, nil
	default:
		return exactnum.Rational{}, usageError("--%s takes n or n,d, got %d values", name, len(v))
	}
}

// complexFlag builds a Complex from two n,d flag values.
func complexFlag(reName string, re []int64, imName string, im []int64) (exactnum.Complex, error) {
	r, err := rationalFlag(reName, re)
	if err != nil {
		return exactnum.Complex{}, err
	}
	i, err := rationalFlag(imName, im)
	if err != nil {
		return exactnum.Complex{}, err
	}
	return exactnum.ComplexFromRationals(r, i), nil
}

// changedFlags returns which of names were set on the command line.
func changedFlags(cmd *cobra.Command, names ...string) []string {
	var set []string
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			set = append(set, n)
		}
	}
	return set
}

func flagError(name string, err error) error {
	return fmt.Errorf("--%s: %w", name, err)
}

// describe renders an operand for logs and JSON output.
func describe(o exactnum.Operand) string {
	if o == nil {
		return ""
	}
	return fmt.Sprint(o)
}
