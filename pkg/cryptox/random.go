package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base36Upper is the alphabet for invitation code suffixes.
	Base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// PasswordAlphabet is the alphabet for generated client passwords.
	PasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%"
)

// RandomString returns n characters drawn uniformly from alphabet.
func RandomString(alphabet string, n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("cryptox: length must be positive, got %d", n)
	}
	if len(alphabet) < 2 {
		return "", fmt.Errorf("cryptox: alphabet too small")
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		j, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("cryptox: read random: %w", err)
		}
		out[i] = alphabet[j.Int64()]
	}

	return string(out), nil
}
