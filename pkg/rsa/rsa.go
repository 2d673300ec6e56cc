// Package rsa implements textbook RSA over machine-width integers.
//
// Keys are generated from two caller-supplied primes and messages are
// single residues mod n. None of this is hardened; it exists to let the
// arithmetic be inspected, not to protect data.
package rsa

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/modclock/modclock/internal/params"
	"github.com/modclock/modclock/pkg/math/arith"
	"github.com/modclock/modclock/pkg/math/numtheory"
)

var (
	ErrNotPrime   = errors.New("rsa: p and q must both be prime")
	ErrInvalidKey = errors.New("rsa: inconsistent key pair")
)

// KeyPair holds a full textbook RSA key.
//
// Invariants: n = p⋅q for primes p, q; ϕ = (p-1)(q-1); 1 < e < ϕ with
// gcd(e, ϕ) = 1; and e⋅d ≡ 1 (mod ϕ). A KeyPair is a value, never
// mutated after generation.
type KeyPair struct {
	N   int64
	E   int64
	D   int64
	Phi int64
}

// GenerateKeys derives a key pair from the primes p and q.
//
// The public exponent starts at 65537, falling back to 3 when that seed
// is not below ϕ, and then probes upwards in steps of 2 until it is
// coprime with ϕ. Distinctness of p and q is the caller's business.
func GenerateKeys(p, q int64) (*KeyPair, error) {
	if !numtheory.IsPrime(p) {
		return nil, fmt.Errorf("p = %d: %w", p, ErrNotPrime)
	}
	if !numtheory.IsPrime(q) {
		return nil, fmt.Errorf("q = %d: %w", q, ErrNotPrime)
	}

	n := p * q
	phi := (p - 1) * (q - 1)

	e := int64(params.RSAExponentSeed)
	if e >= phi {
		e = params.RSAExponentFallback
	}
	for numtheory.GCD(e, phi) != 1 {
		e += 2
	}

	d, err := numtheory.ModInverse(e, phi)
	if err != nil {
		// unreachable once the search above guarantees gcd(e, ϕ) = 1,
		// so surface it as a bad prime input rather than a new case
		return nil, fmt.Errorf("d = %d⁻¹ (mod %d): %w", e, phi, ErrNotPrime)
	}

	return &KeyPair{N: n, E: e, D: d, Phi: phi}, nil
}

// Encrypt returns messageᵉ (mod n). The round trip through Decrypt only
// recovers the message when 0 ≤ message < n; that bound is not enforced.
func Encrypt(message, e, n int64) (int64, error) {
	m, err := arith.NewModulus(n)
	if err != nil {
		return 0, err
	}
	return m.Exp(message, e)
}

// Decrypt returns ciphertextᵈ (mod n).
func Decrypt(ciphertext, d, n int64) (int64, error) {
	m, err := arith.NewModulus(n)
	if err != nil {
		return 0, err
	}
	return m.Exp(ciphertext, d)
}

// Validate checks the key pair invariants, in particular e⋅d ≡ 1 (mod ϕ).
func (kp *KeyPair) Validate() error {
	if kp.N < 2 || kp.Phi < 1 || kp.E < 2 || kp.D < 1 {
		return ErrInvalidKey
	}
	if numtheory.GCD(kp.E, kp.Phi) != 1 {
		return fmt.Errorf("gcd(e, ϕ) ≠ 1: %w", ErrInvalidKey)
	}
	m, err := arith.NewModulus(kp.Phi)
	if err != nil {
		return err
	}
	if m.Mul(kp.E, kp.D) != 1%kp.Phi {
		return fmt.Errorf("e⋅d ≢ 1 (mod ϕ): %w", ErrInvalidKey)
	}
	return nil
}

// Fingerprint returns a short hex blake3 digest of the public half
// (n, e), handy for telling generated keys apart in logs and responses.
func (kp *KeyPair) Fingerprint() string {
	h := blake3.New()
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(kp.N))
	binary.BigEndian.PutUint64(buf[8:], uint64(kp.E))
	_, _ = h.Write(buf[:])
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
