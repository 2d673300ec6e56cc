// Package fermat demonstrates Fermat's Little Theorem:
// aᵖ⁻¹ ≡ 1 (mod p) for prime p and a not divisible by p.
package fermat

import (
	"errors"
	"fmt"

	"github.com/modclock/modclock/internal/params"
	"github.com/modclock/modclock/pkg/math/arith"
	"github.com/modclock/modclock/pkg/math/numtheory"
)

var ErrNotPrime = errors.New("fermat: p must be prime")

// Step pairs an exponent i with aⁱ (mod p), tracing the progression
// towards the theorem's conclusion.
type Step struct {
	Exponent int64
	Result   int64
}

// Result is the verification outcome: aᵖ⁻¹ (mod p), which is 1 whenever
// p does not divide a, plus the first few intermediate powers.
type Result struct {
	Result int64
	Steps  []Step
}

// Verify computes aᵖ⁻¹ (mod p) together with the powers a¹ … aᵏ (mod p)
// for k = min(10, p-1). It fails when p is not prime.
func Verify(a, p int64) (*Result, error) {
	if !numtheory.IsPrime(p) {
		return nil, fmt.Errorf("p = %d: %w", p, ErrNotPrime)
	}
	// p ≥ 2 here, so the modulus is always valid
	m, err := arith.NewModulus(p)
	if err != nil {
		return nil, err
	}

	result, err := m.Exp(a, p-1)
	if err != nil {
		return nil, err
	}

	maxSteps := int64(params.FermatMaxSteps)
	if p-1 < maxSteps {
		maxSteps = p - 1
	}
	steps := make([]Step, 0, maxSteps)
	for i := int64(1); i <= maxSteps; i++ {
		v, err := m.Exp(a, i)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Exponent: i, Result: v})
	}

	return &Result{Result: result, Steps: steps}, nil
}
