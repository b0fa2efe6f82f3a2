package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"128-bit token", TokenSize128},
		{"256-bit token", TokenSize256},
		{"custom size", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestRandomString(t *testing.T) {
	t.Run("uses only the given alphabet", func(t *testing.T) {
		s, err := RandomString(Base36Upper, 64)
		require.NoError(t, err)
		require.Len(t, s, 64)
		for _, r := range s {
			require.True(t, strings.ContainsRune(Base36Upper, r), "unexpected rune %q", r)
		}
	})

	t.Run("password alphabet", func(t *testing.T) {
		s, err := RandomString(PasswordAlphabet, 10)
		require.NoError(t, err)
		require.Len(t, s, 10)
		for _, r := range s {
			require.True(t, strings.ContainsRune(PasswordAlphabet, r))
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := RandomString(Base36Upper, 0)
		require.Error(t, err)
		_, err = RandomString("A", 4)
		require.Error(t, err)
	})
}
