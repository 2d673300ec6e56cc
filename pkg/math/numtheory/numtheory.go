package numtheory

import (
	"errors"
	"fmt"
)

var ErrNoInverse = errors.New("numtheory: modular inverse does not exist")

// GCD returns the non-negative greatest common divisor of a and b,
// with GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD returns (g, x, y) such that a⋅x + b⋅y = g = gcd(a, b).
func ExtendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := ExtendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// ModInverse returns a⁻¹ (mod m), normalized into [0, m).
// The inverse exists iff gcd(a, m) = 1; otherwise ErrNoInverse is returned.
func ModInverse(a, m int64) (int64, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, fmt.Errorf("gcd(%d, %d) = %d: %w", a, m, g, ErrNoInverse)
	}
	return (x%m + m) % m, nil
}

// IsPrime reports whether n is prime, by trial division with odd
// candidates up to √n. O(√n), which is fine for the machine-width
// inputs this package serves; it is not meant for cryptographic sizes.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
