package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomCode returns an n-character code drawn uniformly from an alphabet of
// upper-case letters and digits without the look-alikes 0, O, 1 and I.
func RandomCode(n int) (string, error) {
	out := make([]byte, n)
	limit := big.NewInt(int64(len(joinCodeAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error generating random code: %w", err)
		}
		out[i] = joinCodeAlphabet[idx.Int64()]
	}
	return string(out), nil
}
