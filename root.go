package exactnum

import (
	"math"
	"math/big"
)

// Root returns the exact n-th root of r.
//
// The candidate roots of numerator and denominator are the nearest integers to
// their real n-th roots; they are accepted only if raising them back to n
// reproduces numerator and denominator exactly. Otherwise the root is not a
// rational and ErrIrrationalResult is returned. n must be positive.
//
// A negative r has a real root only for odd n.
func Root(r Rational, n int64) (Rational, error) {
	if n <= 0 {
		return Rational{}, errorf(ErrInvalidArgument, "root degree must be positive, got %d", n)
	}
	if n == 1 {
		return r, nil
	}
	num, ok := nthRoot(r.n(), n)
	if !ok {
		return Rational{}, errorf(ErrIrrationalResult, "the %d-th root of %s is irrational", n, r)
	}
	den, ok := nthRoot(r.d(), n)
	if !ok {
		return Rational{}, errorf(ErrIrrationalResult, "the %d-th root of %s is irrational", n, r)
	}
	return normalize(num, den), nil
}

func nthRoot(x *big.Int, n int64) (*big.Int, bool) {
	if x.Sign() < 0 {
		if n%2 == 0 {
			return nil, false
		}
		c, ok := nthRoot(new(big.Int).Neg(x), n)
		if !ok {
			return nil, false
		}
		return c.Neg(c), true
	}
	c := rootCandidate(x, n)
	if new(big.Int).Exp(c, big.NewInt(n), nil).Cmp(x) != 0 {
		return nil, false
	}
	return c, true
}

// rootCandidate returns an integer near x^(1/n) for x >= 0 and n >= 2.
func rootCandidate(x *big.Int, n int64) *big.Int {
	if x.BitLen() <= 53 {
		return big.NewInt(int64(math.Round(math.Pow(float64(x.Int64()), 1/float64(n)))))
	}
	if int64(x.BitLen()) <= n {
		// 1 < x^(1/n) < 2 and 2^n > x: no integer root, 1 fails verification
		return big.NewInt(1)
	}
	// Past float64's exact integer range use floor(x^(1/n)). For a perfect
	// power it is the root itself, which is all verification accepts.
	return floorRoot(x, n)
}

// floorRoot is Newton's method on integers, started above the root.
func floorRoot(x *big.Int, n int64) *big.Int {
	k := big.NewInt(n)
	k1 := big.NewInt(n - 1)
	y := new(big.Int).Lsh(bigOne, uint((int64(x.BitLen())+n-1)/n))
	for {
		t := new(big.Int).Exp(y, k1, nil)
		t.Quo(x, t)
		z := new(big.Int).Mul(k1, y)
		z.Add(z, t)
		z.Quo(z, k)
		if z.Cmp(y) >= 0 {
			return y
		}
		y = z
	}
}
