package security

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced before hashing, never after.
const MinPasswordLength = 6

const hashCost = 10

var ErrWeakPassword = errors.New("password must be at least 6 characters")

// HashPassword returns a bcrypt hash of plain. An input that is already a
// well-formed bcrypt hash is passed through unchanged, so update paths that
// write back a stored hash cannot double-hash it.
func HashPassword(plain string) (string, error) {
	if IsHashed(plain) {
		return plain, nil
	}
	if len(plain) < MinPasswordLength {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// It never fails loudly on mismatch.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsHashed reports whether s is a structurally valid bcrypt hash string.
func IsHashed(s string) bool {
	if !strings.HasPrefix(s, "$2a$") && !strings.HasPrefix(s, "$2b$") && !strings.HasPrefix(s, "$2y$") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
