// Package crt solves systems of congruences via the Chinese Remainder
// Theorem.
package crt

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/modclock/modclock/pkg/math/numtheory"
)

var (
	ErrLengthMismatch = errors.New("crt: remainders and moduli must have the same length")
	ErrZeroModulus    = errors.New("crt: modulus is zero")
	ErrOverflow       = errors.New("crt: solution does not fit in 64 bits")
)

// Solution is the residue x ≡ X (mod M) reconstructed from a system,
// where M is the product of the system's moduli.
type Solution struct {
	X int64
	M int64
}

// Solve reconstructs the unique x (mod ∏ moduli) with
// x ≡ remainders[i] (mod moduli[i]) for every i.
//
// The moduli must be pairwise coprime; when they are not, the failure
// surfaces as numtheory.ErrNoInverse from the per-term inverse rather
// than an up-front check. A zero modulus fails fast with ErrZeroModulus.
// All intermediate products are exact, and ErrOverflow is returned when
// the combined modulus or the solution leaves int64 — never a silently
// wrapped result.
func Solve(remainders, moduli []int64) (*Solution, error) {
	if len(remainders) != len(moduli) {
		return nil, fmt.Errorf("%d remainders, %d moduli: %w", len(remainders), len(moduli), ErrLengthMismatch)
	}

	M := big.NewInt(1)
	for _, m := range moduli {
		if m == 0 {
			return nil, ErrZeroModulus
		}
		M.Mul(M, big.NewInt(m))
	}

	x := new(big.Int)
	Mi := new(big.Int)
	term := new(big.Int)
	for i, m := range moduli {
		mBig := big.NewInt(m)
		Mi.Div(M, mBig)
		// yᵢ = Mᵢ⁻¹ (mod mᵢ); reduce Mᵢ first so the int64 inverse is exact
		yi, err := numtheory.ModInverse(term.Mod(Mi, mBig).Int64(), m)
		if err != nil {
			return nil, fmt.Errorf("modulus %d: %w", m, err)
		}
		// x += rᵢ ⋅ Mᵢ ⋅ yᵢ
		term.Mul(big.NewInt(remainders[i]), Mi)
		term.Mul(term, big.NewInt(yi))
		x.Add(x, term)
	}

	x.Mod(x, M)
	if !x.IsInt64() || !M.IsInt64() {
		return nil, ErrOverflow
	}
	return &Solution{X: x.Int64(), M: M.Int64()}, nil
}
