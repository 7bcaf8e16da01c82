package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hashing with cost 12 takes ~250ms per call, so the round-trip tests share
// a handful of precomputed hashes instead of hashing in every subtest.

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// bcrypt output is self-describing and never equals the input.
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt prefix, got %q", hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_SaltIsRandomized(t *testing.T) {
	first, err := HashPassword("same secret")
	require.NoError(t, err)
	second, err := HashPassword("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	ok, err := VerifyPassword("same secret", first)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = VerifyPassword("same secret", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_TrimsWhitespace(t *testing.T) {
	hash, err := HashPassword("  padded secret \n")
	require.NoError(t, err)

	// The trimmed form verifies against a hash of the padded form and
	// vice versa.
	ok, err := VerifyPassword("padded secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("\t padded secret  ", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("right password")
	require.NoError(t, err)

	ok, err := VerifyPassword("wrong password", hash)
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, ok)
}

func TestVerifyPassword_CorruptedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty string", hash: ""},
		{name: "not a bcrypt hash", hash: "plaintext-left-by-a-bad-migration"},
		{name: "truncated bcrypt hash", hash: "$2a$12$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword("any password", tt.hash)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrHashCorrupted)
		})
	}
}
