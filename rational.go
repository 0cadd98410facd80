package exactnum

import (
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Rational is an exact fraction kept in lowest terms with a positive
// denominator; the sign lives in the numerator. The zero value is 0.
//
// A Rational never modifies the integers it holds once constructed, so values
// can be copied and shared freely. Use New/NewBig/FromFloat to build one.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New returns num/den in lowest terms. A negative den moves its sign into the
// numerator; den == 0 fails with ErrDivisionByZero.
func New(num, den int64) (Rational, error) {
	return newRational(big.NewInt(num), big.NewInt(den))
}

// NewBig is New for arbitrary-precision integers. The arguments are copied.
func NewBig(num, den *big.Int) (Rational, error) {
	if num == nil || den == nil {
		return Rational{}, errorf(ErrInvalidArgument, "numerator and denominator must be integers")
	}
	return newRational(new(big.Int).Set(num), new(big.Int).Set(den))
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns v/1.
func FromInt(v int64) Rational {
	return Rational{num: big.NewInt(v), den: big.NewInt(1)}
}

// newRational takes ownership of n and d.
func newRational(n, d *big.Int) (Rational, error) {
	if d.Sign() == 0 {
		return Rational{}, errorf(ErrDivisionByZero, "denominator is zero")
	}
	return normalize(n, d), nil
}

// normalize takes ownership of n and d. d must be nonzero.
func normalize(n, d *big.Int) Rational {
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	// GCD(0, d) == d, which turns every zero into 0/1.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Rational{num: n, den: d}
}

func (r Rational) n() *big.Int {
	if r.num == nil {
		return bigZero
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.n()) }

// Denom returns a copy of the denominator; it is always positive.
func (r Rational) Denom() *big.Int { return new(big.Int).Set(r.d()) }

func (r Rational) Sign() int    { return r.n().Sign() }
func (r Rational) IsZero() bool { return r.n().Sign() == 0 }
func (r Rational) IsInt() bool  { return r.d().Cmp(bigOne) == 0 }

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.n(), r.d()).Float64()
	return f
}

// Rat returns r as a new big.Rat.
func (r Rational) Rat() *big.Rat { return new(big.Rat).SetFrac(r.n(), r.d()) }

// Cmp compares r and s and returns -1, 0 or +1.
func (r Rational) Cmp(s Rational) int {
	a := new(big.Int).Mul(r.n(), s.d())
	b := new(big.Int).Mul(s.n(), r.d())
	return a.Cmp(b)
}

func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.n()), den: r.d()}
}

func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}
	return r.Neg()
}

// WithNumerator returns num/r.Denom() in lowest terms.
func (r Rational) WithNumerator(num int64) (Rational, error) {
	return newRational(big.NewInt(num), new(big.Int).Set(r.d()))
}

// WithDenominator returns r.Num()/den in lowest terms.
func (r Rational) WithDenominator(den int64) (Rational, error) {
	return newRational(new(big.Int).Set(r.n()), big.NewInt(den))
}

// toRational coerces an Int, Real or Rational operand. verb names the
// operation for the error message.
func toRational(o Operand, verb string) (Rational, error) {
	switch v := o.(type) {
	case Rational:
		return v, nil
	case Int:
		return FromInt(int64(v)), nil
	case Real:
		return FromFloat(float64(v))
	}
	return Rational{}, errorf(ErrUnsupportedOperand, "cannot %s rational and %s", verb, operandName(o))
}

// Add returns r + o for an Int, Real or Rational operand.
func (r Rational) Add(o Operand) (Rational, error) {
	b, err := toRational(o, "add")
	if err != nil {
		return Rational{}, err
	}
	return r.add(b), nil
}

// Sub returns r - o, computed as r + (-o).
func (r Rational) Sub(o Operand) (Rational, error) {
	b, err := toRational(o, "subtract")
	if err != nil {
		return Rational{}, err
	}
	return r.add(b.Neg()), nil
}

// Mul returns r * o.
func (r Rational) Mul(o Operand) (Rational, error) {
	b, err := toRational(o, "multiply")
	if err != nil {
		return Rational{}, err
	}
	return r.mul(b), nil
}

// Div returns r / o. A zero divisor fails with ErrDivisionByZero.
func (r Rational) Div(o Operand) (Rational, error) {
	b, err := toRational(o, "divide")
	if err != nil {
		return Rational{}, err
	}
	return r.div(b)
}

func (r Rational) add(b Rational) Rational {
	n := new(big.Int).Mul(r.n(), b.d())
	n.Add(n, new(big.Int).Mul(b.n(), r.d()))
	return normalize(n, new(big.Int).Mul(r.d(), b.d()))
}

func (r Rational) mul(b Rational) Rational {
	return normalize(new(big.Int).Mul(r.n(), b.n()), new(big.Int).Mul(r.d(), b.d()))
}

func (r Rational) div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, errorf(ErrDivisionByZero, "cannot divide %s by zero", r)
	}
	// multiply through by sign(b) so the new denominator stays positive
	s := big.NewInt(int64(b.Sign()))
	n := new(big.Int).Mul(r.n(), b.d())
	n.Mul(n, s)
	d := new(big.Int).Mul(r.d(), b.n())
	d.Mul(d, s)
	return normalize(n, d), nil
}

// Pow raises r to an Int, Real or Rational exponent.
//
// Integer exponents are exact; a negative one inverts the fraction and fails
// with ErrDivisionByZero for a zero base. A Real exponent goes through FromFloat.
// A rational exponent p/q needs a non-negative base and yields Root(r^p, q),
// which fails with ErrIrrationalResult when the root is not rational.
func (r Rational) Pow(exponent Operand) (Rational, error) {
	switch e := exponent.(type) {
	case Int:
		return r.powInt(big.NewInt(int64(e)))
	case Real:
		q, err := FromFloat(float64(e))
		if err != nil {
			return Rational{}, err
		}
		return r.Pow(q)
	case Rational:
		return r.powRational(e)
	}
	return Rational{}, errorf(ErrUnsupportedOperand, "exponent must be an integer or rational, got %s", operandName(exponent))
}

func (r Rational) powInt(e *big.Int) (Rational, error) {
	if e.Sign() >= 0 {
		return normalize(new(big.Int).Exp(r.n(), e, nil), new(big.Int).Exp(r.d(), e, nil)), nil
	}
	if r.IsZero() {
		return Rational{}, errorf(ErrDivisionByZero, "cannot raise zero to negative power %s", e)
	}
	k := new(big.Int).Neg(e)
	return normalize(new(big.Int).Exp(r.d(), k, nil), new(big.Int).Exp(r.n(), k, nil)), nil
}

func (r Rational) powRational(e Rational) (Rational, error) {
	if r.Sign() < 0 {
		return Rational{}, errorf(ErrInvalidArgument, "base must be non-negative, got %s", r)
	}
	if !e.d().IsInt64() {
		return Rational{}, errorf(ErrInvalidArgument, "root degree of exponent %s is too large", e)
	}
	p, err := r.powInt(e.n())
	if err != nil {
		return Rational{}, err
	}
	return Root(p, e.d().Int64())
}

// AddAssign sets r = r + o. r is left unchanged on error.
func (r *Rational) AddAssign(o Operand) error {
	v, err := r.Add(o)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// SubAssign sets r = r - o.
func (r *Rational) SubAssign(o Operand) error {
	v, err := r.Sub(o)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MulAssign sets r = r * o.
func (r *Rational) MulAssign(o Operand) error {
	v, err := r.Mul(o)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// DivAssign sets r = r / o.
func (r *Rational) DivAssign(o Operand) error {
	v, err := r.Div(o)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// PowAssign sets r = r ** o.
func (r *Rational) PowAssign(o Operand) error {
	v, err := r.Pow(o)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Equal reports whether r equals o. An Int matches only an integral r, a Real
// is compared through FromFloat, and any other operand is never equal.
func (r Rational) Equal(o Operand) bool {
	switch v := o.(type) {
	case Rational:
		return r.n().Cmp(v.n()) == 0 && r.d().Cmp(v.d()) == 0
	case Int:
		return r.IsInt() && r.n().IsInt64() && r.n().Int64() == int64(v)
	case Real:
		q, err := FromFloat(float64(v))
		return err == nil && r.Equal(q)
	}
	return false
}

// String renders "num" for integers and "num/den" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}
