package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modclock/modclock/pkg/cipher"
	"github.com/modclock/modclock/pkg/crt"
	"github.com/modclock/modclock/pkg/fermat"
	"github.com/modclock/modclock/pkg/math/arith"
	"github.com/modclock/modclock/pkg/rsa"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the engine on the console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "=== Modular Arithmetic Clock Demo ===")
			fmt.Fprintln(out)

			clock, err := arith.NewModulus(12)
			if err != nil {
				return err
			}
			pow, err := clock.Exp(3, 4)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "1. Basic Modular Operations (mod 12):")
			fmt.Fprintf(out, "   7 + 8 ≡ %d (mod 12)\n", clock.Add(7, 8))
			fmt.Fprintf(out, "   5 - 9 ≡ %d (mod 12)\n", clock.Sub(5, 9))
			fmt.Fprintf(out, "   4 × 7 ≡ %d (mod 12)\n", clock.Mul(4, 7))
			fmt.Fprintf(out, "   3^4 ≡ %d (mod 12)\n\n", pow)

			fmt.Fprintln(out, "2. Caesar Cipher (shift 3):")
			encrypted := cipher.Caesar("HELLO WORLD", 3, false)
			fmt.Fprintln(out, "   Plain: HELLO WORLD")
			fmt.Fprintf(out, "   Encrypted: %s\n", encrypted)
			fmt.Fprintf(out, "   Decrypted: %s\n\n", cipher.Caesar(encrypted, 3, true))

			fmt.Fprintln(out, "3. Vigenère Cipher (key: KEY):")
			encryptedVig, err := cipher.Vigenere("HELLO WORLD", "KEY", false)
			if err != nil {
				return err
			}
			decryptedVig, err := cipher.Vigenere(encryptedVig, "KEY", true)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "   Plain: HELLO WORLD")
			fmt.Fprintf(out, "   Encrypted: %s\n", encryptedVig)
			fmt.Fprintf(out, "   Decrypted: %s\n\n", decryptedVig)

			fmt.Fprintln(out, "4. RSA Key Generation (p=61, q=53):")
			keys, err := rsa.GenerateKeys(61, 53)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "   n = %d\n", keys.N)
			fmt.Fprintf(out, "   e = %d\n", keys.E)
			fmt.Fprintf(out, "   d = %d\n", keys.D)
			fmt.Fprintf(out, "   φ(n) = %d\n", keys.Phi)
			fmt.Fprintf(out, "   fingerprint = %s\n", keys.Fingerprint())
			ct, err := rsa.Encrypt(42, keys.E, keys.N)
			if err != nil {
				return err
			}
			pt, err := rsa.Decrypt(ct, keys.D, keys.N)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "   Message: 42, Encrypted: %d, Decrypted: %d\n\n", ct, pt)

			fmt.Fprintln(out, "5. Chinese Remainder Theorem:")
			sol, err := crt.Solve([]int64{2, 3, 2}, []int64{3, 5, 7})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "   x ≡ 2 (mod 3), x ≡ 3 (mod 5), x ≡ 2 (mod 7)")
			fmt.Fprintf(out, "   Solution: x ≡ %d (mod %d)\n\n", sol.X, sol.M)

			fmt.Fprintln(out, "6. Fermat's Little Theorem (a=2, p=7):")
			res, err := fermat.Verify(2, 7)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "   2^6 ≡ %d (mod 7)\n", res.Result)
			for _, step := range res.Steps {
				fmt.Fprintf(out, "   2^%d ≡ %d (mod 7)\n", step.Exponent, step.Result)
			}
			return nil
		},
	}
}
