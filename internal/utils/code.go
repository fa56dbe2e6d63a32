package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns a random 6-digit numeric verification code in the
// range 100000–999999, drawn from crypto/rand.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("error generating verification code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
