// Package exactnum provides exact rational arithmetic for Go and complex numbers
// built on top of it.
//
// Rationals are kept as normalized fractions of arbitrary-precision integers
// (lowest terms, positive denominator), so addition, subtraction, multiplication,
// division, integer powers and exact roots never round. Floating-point inputs are
// mapped to rationals through a fixed 10-decimal-place conversion (FromFloat).
//
// Complex values are pairs of rationals with exact +, -, *, /. Integer powers of a
// Complex are the one deliberate exception: they go through floating-point polar
// form (Magnitude, Phase) and the result components are converted back with
// FromFloat.
//
// Minimal usage:
//
//	a := exactnum.MustNew(1, 2)
//	b, _ := a.Add(exactnum.Int(3))         // 7/2
//	r, _ := exactnum.MustNew(8, 27).Pow(exactnum.MustNew(1, 3)) // 2/3
//	z := exactnum.MustComplex(exactnum.Int(1), exactnum.Int(2))
//	q, _ := z.Div(exactnum.MustComplex(exactnum.Int(3), exactnum.Int(4)))
//	fmt.Println(q) // (11/25) + (2/25)i
//
// SPDX-License-Identifier: MIT
package exactnum

// Operand is the closed set of values the arithmetic methods accept:
// Int, Real, Rational and Complex. Which variants a given method supports is
// documented on the method; the others fail with ErrUnsupportedOperand.
type Operand interface {
	operand()
}

// Int is an integer operand.
type Int int64

// Real is a floating-point operand. It is converted with FromFloat before it
// takes part in exact arithmetic.
type Real float64

func (Int) operand()      {}
func (Real) operand()     {}
func (Rational) operand() {}
func (Complex) operand()  {}

// operandName is used in error messages.
func operandName(o Operand) string {
	switch o.(type) {
	case Int:
		return "integer"
	case Real:
		return "real"
	case Rational:
		return "rational"
	case Complex:
		return "complex"
	case nil:
		return "nil"
	}
	return "unknown"
}
