package fermat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	res, err := Verify(2, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Result, "2⁶ ≡ 1 (mod 7)")
	require.Len(t, res.Steps, 6, "p-1 < 10 caps the trace at p-1")

	// 2, 4, 8≡1, 2, 4, 1
	wantSteps := []int64{2, 4, 1, 2, 4, 1}
	for i, st := range res.Steps {
		assert.EqualValues(t, i+1, st.Exponent)
		assert.Equal(t, wantSteps[i], st.Result)
	}

	res, err = Verify(3, 11)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Result, "3¹⁰ ≡ 1 (mod 11)")
	assert.Len(t, res.Steps, 10)
}

func TestVerifyStepCap(t *testing.T) {
	res, err := Verify(2, 101)
	require.NoError(t, err)
	assert.Len(t, res.Steps, 10, "trace capped at 10 for large primes")
	assert.EqualValues(t, 1, res.Result)
}

func TestVerifyMultipleOfP(t *testing.T) {
	// p divides a, so the theorem's hypothesis fails and the result is 0
	res, err := Verify(14, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Result)
}

func TestVerifyRejectsComposite(t *testing.T) {
	for _, p := range []int64{-3, 0, 1, 4, 9, 100} {
		_, err := Verify(2, p)
		assert.ErrorIs(t, err, ErrNotPrime, "p = %d", p)
	}
}

func TestVerifySmallestPrime(t *testing.T) {
	res, err := Verify(3, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Result, "3¹ ≡ 1 (mod 2)")
	require.Len(t, res.Steps, 1)
	assert.EqualValues(t, 1, res.Steps[0].Exponent)
	assert.EqualValues(t, 1, res.Steps[0].Result)
}
