package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenKeyBytes is the entropy of a token key. Keys are hex encoded, so the
// resulting string is twice this length.
const TokenKeyBytes = 20

// NewTokenKey generates a random 40-character hex token key.
func NewTokenKey() (string, error) {
	buf := make([]byte, TokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
