// Package cipher implements the classical Caesar and Vigenère alphabet
// substitution ciphers.
//
// Both ciphers fold their input to upper case and shift only the letters
// A…Z; every other rune passes through unchanged. They preserve the
// alphabet, not the case.
package cipher

import (
	"errors"
	"strings"

	"github.com/modclock/modclock/internal/params"
)

var ErrEmptyKey = errors.New("cipher: key must not be empty")

// Caesar shifts every letter by a fixed amount around the A…Z ring.
// Decryption applies the complementary shift. Any shift value is
// accepted; it is normalized into [0, 26).
func Caesar(text string, shift int, decrypt bool) string {
	s := ((shift % params.AlphabetSize) + params.AlphabetSize) % params.AlphabetSize
	if decrypt {
		s = (params.AlphabetSize - s) % params.AlphabetSize
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			r = 'A' + (r-'A'+rune(s))%params.AlphabetSize
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Vigenere shifts every letter by the amount given by the corresponding
// key letter, negated when decrypting. The key cursor advances only on
// letters, so punctuation and spacing do not consume key positions.
func Vigenere(text, key string, decrypt bool) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	k := strings.ToUpper(key)

	var b strings.Builder
	b.Grow(len(text))
	ki := 0
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			s := int(k[ki%len(k)] - 'A')
			if decrypt {
				s = -s
			}
			r = 'A' + rune(((int(r-'A')+s)%params.AlphabetSize+params.AlphabetSize)%params.AlphabetSize)
			ki++
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
