package exactnum

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FloatPlaces is the number of decimal places FromFloat keeps.
const FloatPlaces = 10

// FromFloat converts x to a Rational by rounding its exact binary value to
// FloatPlaces decimal places, ties to even. The mapping is lossy but
// deterministic: FromFloat(0.75) is 3/4, FromFloat(1.0/3) is
// 3333333333/10000000000 and FromFloat(1.5e-10) is 1/10000000000, since that
// double lies just below the tie. NaN and infinities fail with
// ErrInvalidArgument.
func FromFloat(x float64) (Rational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{}, errorf(ErrInvalidArgument, "cannot convert %v to a rational", x)
	}
	d := roundExact(x, FloatPlaces)
	num := d.Coefficient()
	den := big.NewInt(1)
	if exp := d.Exponent(); exp < 0 {
		den.Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	} else if exp > 0 {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	}
	return normalize(num, den), nil
}

// roundExact rounds the exact binary value of a finite x to digits decimal
// places (negative digits round to tens, hundreds, ...), ties to even.
func roundExact(x float64, digits int) decimal.Decimal {
	v := new(big.Rat).SetFloat64(x)
	k := digits
	if k < 0 {
		k = -k
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil))
	if digits >= 0 {
		v.Mul(v, scale)
	} else {
		v.Quo(v, scale)
	}
	q, m := new(big.Int).QuoRem(v.Num(), v.Denom(), new(big.Int))
	m.Abs(m).Lsh(m, 1)
	if c := m.Cmp(v.Denom()); c > 0 || (c == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(int64(v.Sign())))
	}
	return decimal.NewFromBigInt(q, int32(-digits))
}

// roundFloat renders x rounded to digits decimal places the way a float
// literal prints: shortest form, always with a fractional part.
func roundFloat(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	d := roundExact(x, digits)
	if d.IsZero() && math.Signbit(x) {
		return "-0.0"
	}
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// roundInt renders a finite integral x rounded to digits decimal places.
func roundInt(x float64, digits int) string {
	return roundExact(x, digits).String()
}
