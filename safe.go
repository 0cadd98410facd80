package exactnum

import (
	"sync"
	"unsafe"
)

// Safe wraps a Complex with a mutex so multiple goroutines can share one
// mutable value, typically an accumulator updated with AddAssign/MulAssign.
// Binary operations return NEW Safe results; only the *Assign methods mutate.
type Safe struct {
	mu sync.RWMutex
	z  Complex
}

// NewSafe wraps z.
func NewSafe(z Complex) *Safe { return &Safe{z: z} }

// Value returns a snapshot of the wrapped value.
func (s *Safe) Value() Complex { s.mu.RLock(); z := s.z; s.mu.RUnlock(); return z }

// Set replaces the wrapped value.
func (s *Safe) Set(z Complex) { s.mu.Lock(); s.z = z; s.mu.Unlock() }

// String/format helpers (read-only)
func (s *Safe) String() string {
	s.mu.RLock()
	out := s.z.String()
	s.mu.RUnlock()
	return out
}
func (s *Safe) TrigForm(d int) string {
	s.mu.RLock()
	out := s.z.TrigForm(d)
	s.mu.RUnlock()
	return out
}
func (s *Safe) ExpForm(d int) string {
	s.mu.RLock()
	out := s.z.ExpForm(d)
	s.mu.RUnlock()
	return out
}

// lockPairR acquires read locks on a and b in a stable address order to avoid deadlocks.
func lockPairR(a, b *Safe) (unlock func()) {
	if a == b {
		a.mu.RLock()
		return func() { a.mu.RUnlock() }
	}
	ap := uintptr(unsafe.Pointer(a))
	bp := uintptr(unsafe.Pointer(b))
	if ap < bp {
		a.mu.RLock()
		b.mu.RLock()
		return func() { b.mu.RUnlock(); a.mu.RUnlock() }
	}
	b.mu.RLock()
	a.mu.RLock()
	return func() { a.mu.RUnlock(); b.mu.RUnlock() }
}

// --- Non-mutating arithmetic: each returns a NEW Safe result ---

func (a *Safe) Neg() *Safe {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return NewSafe(a.z.Neg())
}

func (a *Safe) Conj() *Safe {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return NewSafe(a.z.Conj())
}

func (a *Safe) Inv() (*Safe, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return wrap(a.z.Inv())
}

func (a *Safe) Add(b *Safe) (*Safe, error) {
	unlock := lockPairR(a, b)
	defer unlock()
	return wrap(a.z.Add(b.z))
}

func (a *Safe) Sub(b *Safe) (*Safe, error) {
	unlock := lockPairR(a, b)
	defer unlock()
	return wrap(a.z.Sub(b.z))
}

func (a *Safe) Mul(b *Safe) (*Safe, error) {
	unlock := lockPairR(a, b)
	defer unlock()
	return wrap(a.z.Mul(b.z))
}

func (a *Safe) Div(b *Safe) (*Safe, error) {
	unlock := lockPairR(a, b)
	defer unlock()
	return wrap(a.z.Div(b.z))
}

func (a *Safe) Pow(n int64) (*Safe, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return wrap(a.z.Pow(Int(n)))
}

func wrap(z Complex, err error) (*Safe, error) {
	if err != nil {
		return nil, err
	}
	return NewSafe(z), nil
}

// --- In-place arithmetic: the result is computed under the write lock and
// assigned only on success ---

func (s *Safe) AddAssign(o Operand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.z.AddAssign(o)
}

func (s *Safe) SubAssign(o Operand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.z.SubAssign(o)
}

func (s *Safe) MulAssign(o Operand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.z.MulAssign(o)
}

func (s *Safe) DivAssign(o Operand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.z.DivAssign(o)
}

func (s *Safe) PowAssign(n int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.z.PowAssign(Int(n))
}
