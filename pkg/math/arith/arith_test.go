package arith

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModulusRejectsNonPositive(t *testing.T) {
	for _, m := range []int64{0, -1, -12} {
		_, err := NewModulus(m)
		assert.ErrorIs(t, err, ErrNonPositiveModulus, "m = %d", m)
	}
}

func TestClockExamples(t *testing.T) {
	m, err := NewModulus(12)
	require.NoError(t, err)

	assert.EqualValues(t, 3, m.Add(7, 8))
	assert.EqualValues(t, 8, m.Sub(5, 9))
	assert.EqualValues(t, 4, m.Mul(4, 7))

	pow, err := m.Exp(3, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 9, pow)
}

func TestNegativeOperandsNormalize(t *testing.T) {
	m, err := NewModulus(7)
	require.NoError(t, err)

	assert.EqualValues(t, 4, m.Add(-3, 0))
	assert.EqualValues(t, 5, m.Sub(-9, 0))
	assert.EqualValues(t, 1, m.Mul(-5, 4))

	pow, err := m.Exp(-2, 3)
	require.NoError(t, err)
	// (-2)³ ≡ 5³ ≡ 6 (mod 7)
	assert.EqualValues(t, 6, pow)
}

func TestExpEdgeCases(t *testing.T) {
	m, err := NewModulus(10)
	require.NoError(t, err)

	pow, err := m.Exp(3, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pow, "b⁰ = 1")

	one, err := NewModulus(1)
	require.NoError(t, err)
	pow, err = one.Exp(3, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, pow, "everything is 0 mod 1")

	_, err = m.Exp(2, -1)
	assert.ErrorIs(t, err, ErrNegativeExponent)
}

// ops must agree with exact big.Int arithmetic and always land in [0, m).
func TestAgainstBigInt(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))

	reduce := func(x *big.Int, m int64) int64 {
		return new(big.Int).Mod(x, big.NewInt(m)).Int64()
	}

	for i := 0; i < 500; i++ {
		mv := r.Int63n(1<<40) + 1
		a := r.Int63n(1<<50) - 1<<49
		b := r.Int63n(1<<50) - 1<<49
		e := r.Int63n(1 << 16)

		m, err := NewModulus(mv)
		require.NoError(t, err)

		aB, bB := big.NewInt(a), big.NewInt(b)

		got := m.Add(a, b)
		assert.Equal(t, reduce(new(big.Int).Add(aB, bB), mv), got)
		assert.GreaterOrEqual(t, got, int64(0))
		assert.Less(t, got, mv)

		got = m.Sub(a, b)
		assert.Equal(t, reduce(new(big.Int).Sub(aB, bB), mv), got)
		assert.GreaterOrEqual(t, got, int64(0))
		assert.Less(t, got, mv)

		got = m.Mul(a, b)
		assert.Equal(t, reduce(new(big.Int).Mul(aB, bB), mv), got)
		assert.GreaterOrEqual(t, got, int64(0))
		assert.Less(t, got, mv)

		got, err = m.Exp(a, e)
		require.NoError(t, err)
		want := new(big.Int).Exp(
			new(big.Int).Mod(aB, big.NewInt(mv)),
			big.NewInt(e),
			big.NewInt(mv),
		)
		assert.Equal(t, want.Int64(), got)
	}
}

func TestMulDoesNotWrapInt64(t *testing.T) {
	// both operands near 2⁶², where a naive a*b wraps around
	m, err := NewModulus(1<<62 - 57)
	require.NoError(t, err)

	a := int64(1<<62 - 1000)
	b := int64(1<<62 - 2000)
	want := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	want.Mod(want, big.NewInt(m.Int64()))

	assert.Equal(t, want.Int64(), m.Mul(a, b))
}
