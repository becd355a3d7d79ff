package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// RawTokenBytes is the entropy of verification and reset tokens.
const RawTokenBytes = 32

// NewRawToken returns RawTokenBytes random bytes from crypto/rand,
// hex-encoded (64 characters). The raw value is what gets mailed to the
// user; only its HashToken digest is persisted.
func NewRawToken() (string, error) {
	buf := make([]byte, RawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken returns the SHA-256 hex digest of a raw token.
//
// Example usage:
//
//	raw, _ := utils.NewRawToken()
//	stored := utils.HashToken(raw)
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
