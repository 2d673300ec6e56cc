package sample

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/modclock/modclock/internal/params"
	"github.com/modclock/modclock/pkg/math/numtheory"
	"github.com/modclock/modclock/pkg/pool"
)

var ErrBitsOutOfRange = fmt.Errorf("sample: prime bit length must be in [%d, %d]", params.MinPrimeBits, params.MaxPrimeBits)

// tryPrime draws one candidate of exactly bits bits from rand and keeps
// it only if it is prime. It returns nil on a failed draw, which is the
// shape pool.Search expects.
func tryPrime(rand io.Reader, bits int) interface{} {
	var buf [4]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil
	}
	c := int64(binary.BigEndian.Uint32(buf[:]))
	// clamp to bits bits, force the top bit for an exact length,
	// and the low bit since even candidates are wasted draws
	c &= 1<<bits - 1
	c |= 1 | 1<<(bits-1)
	if !numtheory.IsPrime(c) {
		return nil
	}
	return c
}

// Prime returns a random prime with exactly the given bit length.
// Candidates are drawn from rand and checked by trial division, with the
// search spread over the pool's workers. rand must be safe for
// concurrent reads when pl is not nil; crypto/rand.Reader is.
func Prime(rand io.Reader, bits int, pl *pool.Pool) (int64, error) {
	if bits < params.MinPrimeBits || bits > params.MaxPrimeBits {
		return 0, fmt.Errorf("bits = %d: %w", bits, ErrBitsOutOfRange)
	}
	res := pl.Search(1, func() interface{} {
		return tryPrime(rand, bits)
	})
	return res[0].(int64), nil
}

// Pair returns two distinct random primes of the given bit length,
// suitable as RSA factors.
func Pair(rand io.Reader, bits int, pl *pool.Pool) (p, q int64, err error) {
	if bits < params.MinPrimeBits || bits > params.MaxPrimeBits {
		return 0, 0, fmt.Errorf("bits = %d: %w", bits, ErrBitsOutOfRange)
	}
	res := pl.Search(2, func() interface{} {
		return tryPrime(rand, bits)
	})
	p, q = res[0].(int64), res[1].(int64)
	for q == p {
		q, err = Prime(rand, bits, pl)
		if err != nil {
			return 0, 0, err
		}
	}
	return p, q, nil
}
