package exactnum

import (
	"math"
)

// String renders z as "a", "bi", "a + bi" or "a - bi". A part whose
// denominator is not 1 is parenthesized: "(1/2) - (3/4)i".
func (z Complex) String() string {
	if z.im.IsZero() {
		return z.re.String()
	}
	if z.re.IsZero() {
		return z.im.String() + "i"
	}
	sep := " + "
	if z.im.Sign() < 0 {
		sep = " - "
	}
	return parenthesize(z.re) + sep + parenthesize(z.im.Abs()) + "i"
}

func parenthesize(r Rational) string {
	if r.IsInt() {
		return r.String()
	}
	return "(" + r.String() + ")"
}

// AbsString renders the modulus rounded to digits decimal places. It prints as
// an integer when the modulus has no fractional part.
func (z Complex) AbsString(digits int) string {
	abs := z.Magnitude()
	if !math.IsInf(abs, 0) && math.Trunc(abs) == abs {
		return roundInt(abs, digits)
	}
	return roundFloat(abs, digits)
}

// ArgString renders the phase rounded to digits decimal places.
func (z Complex) ArgString(digits int) string {
	return roundFloat(z.Phase(), digits)
}

// TrigForm renders z as "r*(cos(phi) + isin(phi))" with r and phi rounded to
// digits decimal places.
func (z Complex) TrigForm(digits int) string {
	r, phi := z.AbsString(digits), z.ArgString(digits)
	return r + "*(cos(" + phi + ") + isin(" + phi + "))"
}

// ExpForm renders z as "r*exp(phii)" with r and phi rounded to digits decimal
// places.
func (z Complex) ExpForm(digits int) string {
	r, phi := z.AbsString(digits), z.ArgString(digits)
	return r + "*exp(" + phi + "i)"
}
