package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor (log rounds) applied to every
// newly hashed password.
const passwordHashCost = 12

// ErrHashCorrupted is returned by VerifyPassword when the stored hash string
// cannot be parsed as a bcrypt hash. This indicates storage corruption and is
// a hard failure, deliberately distinct from a password mismatch.
var ErrHashCorrupted = errors.New("stored password hash is malformed")

// HashPassword derives a one-way bcrypt hash from the given plaintext secret.
//
// Leading and trailing whitespace is trimmed before hashing, matching the
// trim applied in VerifyPassword. The output is bcrypt's self-describing
// string embedding algorithm tag, cost, and salt; hashing the same secret
// twice yields different strings because the salt is randomized.
//
// No minimum-length policy is applied here: password policy belongs to the
// caller.
func HashPassword(password string) (string, error) {
	trimmed := strings.TrimSpace(password)

	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmed), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword compares a plaintext secret against a stored bcrypt hash.
//
// The secret is trimmed identically to HashPassword. The digest comparison is
// constant-time relative to digest length (performed by bcrypt itself).
//
// Returns:
//   - (true, nil) when the secret matches;
//   - (false, nil) when the secret does not match;
//   - (false, ErrHashCorrupted) when hashedPassword is not a well-formed
//     bcrypt hash — never silently treated as a mismatch.
func VerifyPassword(password, hashedPassword string) (bool, error) {
	trimmed := strings.TrimSpace(password)

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(trimmed))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %w", ErrHashCorrupted, err)
}
