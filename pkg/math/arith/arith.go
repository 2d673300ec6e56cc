package arith

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
)

var (
	ErrNonPositiveModulus = errors.New("arith: modulus must be positive")
	ErrNegativeExponent   = errors.New("arith: exponent must be non-negative")
)

// Modulus is the ring ℤ/mℤ for a machine-width m > 0.
//
// It wraps a saferith.Modulus so that products and powers are computed
// exactly and never wrap around int64; only the final reduced value, which
// always lies in [0, m), is converted back.
type Modulus struct {
	m   int64
	mod *saferith.Modulus
}

// NewModulus returns the ring ℤ/mℤ. It fails when m ≤ 0.
func NewModulus(m int64) (*Modulus, error) {
	if m <= 0 {
		return nil, fmt.Errorf("m = %d: %w", m, ErrNonPositiveModulus)
	}
	return &Modulus{
		m:   m,
		mod: saferith.ModulusFromUint64(uint64(m)),
	}, nil
}

// Int64 returns m.
func (m *Modulus) Int64() int64 { return m.m }

// reduce maps any integer into [0, m).
func (m *Modulus) reduce(a int64) uint64 {
	r := a % m.m
	if r < 0 {
		r += m.m
	}
	return uint64(r)
}

// Add returns (a + b) mod m.
func (m *Modulus) Add(a, b int64) int64 {
	s := m.reduce(a) + m.reduce(b)
	if s >= uint64(m.m) {
		s -= uint64(m.m)
	}
	return int64(s)
}

// Sub returns (a - b) mod m.
func (m *Modulus) Sub(a, b int64) int64 {
	s := m.reduce(a) + uint64(m.m) - m.reduce(b)
	if s >= uint64(m.m) {
		s -= uint64(m.m)
	}
	return int64(s)
}

// Mul returns (a ⋅ b) mod m.
func (m *Modulus) Mul(a, b int64) int64 {
	x := new(saferith.Nat).SetUint64(m.reduce(a))
	y := new(saferith.Nat).SetUint64(m.reduce(b))
	x.ModMul(x, y, m.mod)
	return x.Big().Int64()
}

// Exp returns baseᵉˣᵖ mod m by square-and-multiply, in O(log exp)
// multiplications. The base is reduced before exponentiation, and
// Exp(b, 0) = 1 mod m. A negative exponent is an error.
func (m *Modulus) Exp(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("exp = %d: %w", exp, ErrNegativeExponent)
	}
	// 1 mod m, so that m = 1 yields 0
	result := new(saferith.Nat).SetUint64(m.reduce(1))
	b := new(saferith.Nat).SetUint64(m.reduce(base))
	for exp > 0 {
		if exp&1 == 1 {
			result.ModMul(result, b, m.mod)
		}
		exp >>= 1
		b.ModMul(b, b, m.mod)
	}
	return result.Big().Int64(), nil
}
