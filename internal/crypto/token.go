package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes gives 128 bits of entropy, enough that collision handling
// can rely on randomness instead of retry logic.
const tokenBytes = 16

// NewSessionToken generates a random, unguessable bearer token, hex encoded.
func NewSessionToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
