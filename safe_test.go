package exactnum

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Add is commutative under heavy parallel calls and lock ordering
// (exercises lockPairR stable ordering).
func TestSafeDeadlockFreeAdd(t *testing.T) {
	a := NewSafe(ComplexFromRationals(q(13, 4), q(-7, 4)))
	b := NewSafe(ComplexFromRationals(q(3, 2), q(3, 4)))

	const N = 64
	var wg sync.WaitGroup
	wg.Add(N)
	errs := make(chan string, N)

	for i := 0; i < N; i++ {
		go func() {
			defer wg.Done()
			u, err := a.Add(b)
			if err != nil {
				errs <- err.Error()
				return
			}
			v, err := b.Add(a)
			if err != nil {
				errs <- err.Error()
				return
			}
			if !u.Value().Equal(v.Value()) {
				errs <- "a+b != b+a"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("parallel add mismatch: %s", e)
	}
}

// Many goroutines bump one shared accumulator; every update must land.
func TestSafeConcurrentAssign(t *testing.T) {
	acc := NewSafe(Complex{})
	const N = 200
	var wg sync.WaitGroup
	wg.Add(2 * N)
	for i := 0; i < N; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, acc.AddAssign(Int(1)))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, acc.AddAssign(ComplexFromRationals(q(0, 1), q(1, 2))))
		}()
	}
	wg.Wait()
	assert.True(t, acc.Value().Equal(ci(N, N/2)), "got %s", acc)
}

// Same Safe on both sides must not self-deadlock.
func TestSafeSelfOps(t *testing.T) {
	a := NewSafe(ci(1, 2))
	done := make(chan struct{})
	go func() {
		defer close(done)
		sum, err := a.Add(a)
		if assert.NoError(t, err) {
			assert.Equal(t, "2 + 4i", sum.String())
		}
		quo, err := a.Div(a)
		if assert.NoError(t, err) {
			assert.Equal(t, "1", quo.String())
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("self add/div deadlocked")
	}
}

func TestSafeOps(t *testing.T) {
	a := NewSafe(ci(1, 2))
	b := NewSafe(ci(3, 4))

	d, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "-2 - 2i", d.String())

	m, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, "-5 + 10i", m.String())

	p, err := NewSafe(ci(1, 1)).Pow(2)
	require.NoError(t, err)
	assert.Equal(t, "2i", p.String())

	inv, err := NewSafe(ci(0, 2)).Inv()
	require.NoError(t, err)
	assert.Equal(t, "-1/2i", inv.String())

	assert.Equal(t, "-1 - 2i", a.Neg().String())
	assert.Equal(t, "1 - 2i", a.Conj().String())
	assert.Equal(t, "2.2361*exp(1.1071i)", a.ExpForm(4))
	assert.Equal(t, "2.2361*(cos(1.1071) + isin(1.1071))", a.TrigForm(4))

	_, err = a.Div(NewSafe(Complex{}))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestSafeAssignKeepsValueOnError(t *testing.T) {
	s := NewSafe(ci(1, 2))
	assert.ErrorIs(t, s.DivAssign(Int(0)), ErrDivisionByZero)
	assert.ErrorIs(t, s.SubAssign(Real(1)), ErrUnsupportedOperand)
	require.NoError(t, s.PowAssign(-1))
	assert.Equal(t, "(1/5) - (2/5)i", s.String())

	require.NoError(t, s.MulAssign(Int(5)))
	assert.Equal(t, "1 - 2i", s.String())

	s.Set(Complex{})
	assert.ErrorIs(t, s.PowAssign(-1), ErrDivisionByZero)
	assert.True(t, s.Value().IsZero())
}
