package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaesar(t *testing.T) {
	tests := []struct {
		text    string
		shift   int
		decrypt bool
		want    string
	}{
		{"HELLO", 3, false, "KHOOR"},
		{"KHOOR", 3, true, "HELLO"},
		{"hello", 3, false, "KHOOR"},
		{"HELLO WORLD!", 3, false, "KHOOR ZRUOG!"},
		{"ABC", 0, false, "ABC"},
		{"ABC", 26, false, "ABC"},
		{"ABC", 27, false, "BCD"},
		{"ABC", -1, false, "ZAB"},
		{"XYZ", 3, false, "ABC"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Caesar(tc.text, tc.shift, tc.decrypt),
			"caesar(%q, %d, %v)", tc.text, tc.shift, tc.decrypt)
	}
}

func TestCaesarRoundTrip(t *testing.T) {
	for shift := -30; shift <= 30; shift++ {
		enc := Caesar("THE QUICK BROWN FOX, 1959!", shift, false)
		dec := Caesar(enc, shift, true)
		assert.Equal(t, "THE QUICK BROWN FOX, 1959!", dec, "shift %d", shift)
	}
}

func TestVigenere(t *testing.T) {
	enc, err := Vigenere("HELLO", "KEY", false)
	require.NoError(t, err)
	assert.Equal(t, "RIJVS", enc)

	dec, err := Vigenere(enc, "KEY", true)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", dec)
}

func TestVigenereKeyCursorSkipsNonLetters(t *testing.T) {
	// the key position advances on letters only
	enc, err := Vigenere("HE LL-O", "ABC", false)
	require.NoError(t, err)
	assert.Equal(t, "HF NL-P", enc)
}

func TestVigenereLowercaseKey(t *testing.T) {
	upper, err := Vigenere("HELLO", "KEY", false)
	require.NoError(t, err)
	lower, err := Vigenere("HELLO", "key", false)
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestVigenereEmptyKey(t *testing.T) {
	_, err := Vigenere("HELLO", "", false)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Vigenere("HELLO", "", true)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestVigenereRoundTrip(t *testing.T) {
	texts := []string{
		"HELLO WORLD",
		"ATTACK AT DAWN!",
		"A",
		"",
		"1234 --- 5678",
	}
	for _, text := range texts {
		enc, err := Vigenere(text, "LEMON", false)
		require.NoError(t, err)
		dec, err := Vigenere(enc, "LEMON", true)
		require.NoError(t, err)
		assert.Equal(t, Caesar(text, 0, false), dec, "round trip of %q", text)
	}
}
