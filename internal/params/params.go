package params

const (
	// AlphabetSize is the size of the cipher ring A…Z.
	AlphabetSize = 26

	// FermatMaxSteps caps the number of intermediate aⁱ (mod p) pairs
	// returned alongside a Fermat verification, purely to bound the
	// response size for large primes.
	FermatMaxSteps = 10

	// RSAExponentSeed is the first candidate for the public exponent e.
	RSAExponentSeed = 65537
	// RSAExponentFallback replaces the seed when it is not below ϕ.
	// Both values are odd, so probing in steps of 2 keeps e odd.
	RSAExponentFallback = 3

	// MinPrimeBits and MaxPrimeBits bound the bit length of sampled primes.
	// The upper bound keeps n = p⋅q (and ϕ) comfortably inside int64.
	MinPrimeBits = 4
	MaxPrimeBits = 31
)
