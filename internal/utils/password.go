package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost mirrors the 10 rounds used when the existing account base was
// hashed; raising it would invalidate no hashes but slow auth noticeably.
const bcryptCost = 10

// HashPassword derives a one-way bcrypt hash from the given plaintext
// password. Returns an error for an empty password or if hashing fails.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time with respect to the hash.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
