package exactnum

import (
	"math"
)

// Complex is re + im*i with exact rational components. The zero value is 0.
// Arithmetic is exact except Pow, which goes through floating-point polar form.
type Complex struct {
	re Rational
	im Rational
}

// NewComplex builds re + im*i. Each part may be an Int, a Real (converted with
// FromFloat) or a Rational; anything else fails with ErrInvalidArgument.
func NewComplex(re, im Operand) (Complex, error) {
	r, err := complexPart(re, "real")
	if err != nil {
		return Complex{}, err
	}
	i, err := complexPart(im, "imaginary")
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: r, im: i}, nil
}

// MustComplex is like NewComplex but panics on error.
func MustComplex(re, im Operand) Complex {
	z, err := NewComplex(re, im)
	if err != nil {
		panic(err)
	}
	return z
}

// ComplexFromRationals returns re + im*i.
func ComplexFromRationals(re, im Rational) Complex { return Complex{re: re, im: im} }

func complexPart(o Operand, part string) (Rational, error) {
	switch v := o.(type) {
	case Rational:
		return v, nil
	case Int:
		return FromInt(int64(v)), nil
	case Real:
		return FromFloat(float64(v))
	}
	return Rational{}, errorf(ErrInvalidArgument, "%s part must be a rational, integer or real, got %s", part, operandName(o))
}

func (z Complex) Real() Rational { return z.re }
func (z Complex) Imag() Rational { return z.im }
func (z Complex) IsZero() bool   { return z.re.IsZero() && z.im.IsZero() }

// WithReal returns a copy of z with the real part replaced.
func (z Complex) WithReal(re Operand) (Complex, error) {
	r, err := complexPart(re, "real")
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: r, im: z.im}, nil
}

// WithImag returns a copy of z with the imaginary part replaced.
func (z Complex) WithImag(im Operand) (Complex, error) {
	i, err := complexPart(im, "imaginary")
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: z.re, im: i}, nil
}

// Complex128 returns the nearest complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re.Float64(), z.im.Float64())
}

// scalar coerces the operands a Complex accepts besides Complex itself.
// Real is rejected: float operands stay on the other side of the exactness
// boundary.
func scalar(o Operand, verb string) (Rational, error) {
	switch v := o.(type) {
	case Rational:
		return v, nil
	case Int:
		return FromInt(int64(v)), nil
	}
	return Rational{}, errorf(ErrUnsupportedOperand, "cannot %s complex and %s", verb, operandName(o))
}

func (z Complex) Neg() Complex  { return Complex{re: z.re.Neg(), im: z.im.Neg()} }
func (z Complex) Conj() Complex { return Complex{re: z.re, im: z.im.Neg()} }

// Add returns z + o for a Complex, Rational or Int operand. A scalar adds to
// the real part only.
func (z Complex) Add(o Operand) (Complex, error) {
	if w, ok := o.(Complex); ok {
		return z.add(w), nil
	}
	s, err := scalar(o, "add")
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: z.re.add(s), im: z.im}, nil
}

// Sub returns z - o, computed as z + (-o).
func (z Complex) Sub(o Operand) (Complex, error) {
	if w, ok := o.(Complex); ok {
		return z.add(w.Neg()), nil
	}
	s, err := scalar(o, "subtract")
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: z.re.add(s.Neg()), im: z.im}, nil
}

// Mul returns z * o.
func (z Complex) Mul(o Operand) (Complex, error) {
	if w, ok := o.(Complex); ok {
		return z.mul(w), nil
	}
	s, err := scalar(o, "multiply")
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: z.re.mul(s), im: z.im.mul(s)}, nil
}

// Div returns z / o. Dividing by a zero Complex or a zero scalar fails with
// ErrDivisionByZero.
func (z Complex) Div(o Operand) (Complex, error) {
	if w, ok := o.(Complex); ok {
		return z.div(w)
	}
	s, err := scalar(o, "divide")
	if err != nil {
		return Complex{}, err
	}
	if s.IsZero() {
		return Complex{}, errorf(ErrDivisionByZero, "cannot divide %s by zero", z)
	}
	re, _ := z.re.div(s)
	im, _ := z.im.div(s)
	return Complex{re: re, im: im}, nil
}

// Inv returns 1 / z.
func (z Complex) Inv() (Complex, error) {
	return Complex{re: FromInt(1)}.div(z)
}

func (z Complex) add(w Complex) Complex {
	return Complex{re: z.re.add(w.re), im: z.im.add(w.im)}
}

// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (z Complex) mul(w Complex) Complex {
	return Complex{
		re: z.re.mul(w.re).add(z.im.mul(w.im).Neg()),
		im: z.re.mul(w.im).add(z.im.mul(w.re)),
	}
}

// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c^2+d^2)
func (z Complex) div(w Complex) (Complex, error) {
	if w.IsZero() {
		return Complex{}, errorf(ErrDivisionByZero, "cannot divide %s by zero", z)
	}
	m := w.norm()
	re, err := z.re.mul(w.re).add(z.im.mul(w.im)).div(m)
	if err != nil {
		return Complex{}, err
	}
	im, err := z.im.mul(w.re).add(z.re.mul(w.im).Neg()).div(m)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: re, im: im}, nil
}

// norm is the squared modulus re^2 + im^2.
func (z Complex) norm() Rational {
	return z.re.mul(z.re).add(z.im.mul(z.im))
}

// Magnitude returns |z| as a float64.
func (z Complex) Magnitude() float64 {
	return math.Sqrt(z.norm().Float64())
}

// Phase returns the argument of z in (-Pi, Pi].
func (z Complex) Phase() float64 {
	return math.Atan2(z.im.Float64(), z.re.Float64())
}

// Pow returns z**n for an Int exponent via polar form:
// |z|^n * (cos(n*phase) + i*sin(n*phase)), with both components converted back
// through FromFloat. The result is therefore approximate, unlike every other
// Complex operation. Any other exponent fails with ErrInvalidArgument.
func (z Complex) Pow(n Operand) (Complex, error) {
	e, ok := n.(Int)
	if !ok {
		return Complex{}, errorf(ErrInvalidArgument, "exponent must be an integer, got %s", operandName(n))
	}
	if e < 0 && z.IsZero() {
		return Complex{}, errorf(ErrDivisionByZero, "cannot raise zero to negative power %d", e)
	}
	r := math.Pow(z.Magnitude(), float64(e))
	phi := float64(e) * z.Phase()
	re, err := FromFloat(r * math.Cos(phi))
	if err != nil {
		return Complex{}, err
	}
	im, err := FromFloat(r * math.Sin(phi))
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: re, im: im}, nil
}

// AddAssign sets z = z + o. z is left unchanged on error.
func (z *Complex) AddAssign(o Operand) error {
	v, err := z.Add(o)
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// SubAssign sets z = z - o.
func (z *Complex) SubAssign(o Operand) error {
	v, err := z.Sub(o)
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// MulAssign sets z = z * o.
func (z *Complex) MulAssign(o Operand) error {
	v, err := z.Mul(o)
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// DivAssign sets z = z / o.
func (z *Complex) DivAssign(o Operand) error {
	v, err := z.Div(o)
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// PowAssign sets z = z ** n.
func (z *Complex) PowAssign(n Operand) error {
	v, err := z.Pow(n)
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// Equal reports whether z equals o. A Rational or Int matches only a z with a
// zero imaginary part; any other operand is never equal.
func (z Complex) Equal(o Operand) bool {
	switch v := o.(type) {
	case Complex:
		return z.re.Equal(v.re) && z.im.Equal(v.im)
	case Rational, Int:
		return z.im.IsZero() && z.re.Equal(v)
	}
	return false
}
