package exactnum

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrIrrationalResult   = errors.New("irrational result")
	ErrUnsupportedOperand = errors.New("unsupported operand")
)

func errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("exactnum: %w: %s", kind, fmt.Sprintf(format, args...))
}
