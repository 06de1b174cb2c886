package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// HashParams configures the PBKDF2 key derivation parameters.
type HashParams struct {
	Iterations int
	SaltLength int
	KeyLength  int
}

// DefaultHashParams returns the PBKDF2-HMAC-SHA256 parameters used for
// password hashing. Stored hashes embed no parameters, so changing these
// invalidates existing credentials.
func DefaultHashParams() HashParams {
	return HashParams{
		Iterations: 200_000,
		SaltLength: 16,
		KeyLength:  32,
	}
}

// HashPassword hashes a password using PBKDF2-HMAC-SHA256 with a random salt.
// Returns the hash encoded as "<hex-salt>$<hex-digest>"; the '$' delimiter
// cannot appear in hex output, so splitting on it is unambiguous.
func HashPassword(password string) (string, error) {
	params := DefaultHashParams()

	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	digest := pbkdf2.Key([]byte(password), salt, params.Iterations, params.KeyLength, sha256.New)

	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(digest), nil
}

// VerifyPassword checks whether a password matches the given encoded hash.
// Malformed stored values verify as false rather than erroring, and the
// digest comparison is constant time to prevent timing attacks.
func VerifyPassword(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	digest, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	params := DefaultHashParams()
	candidate := pbkdf2.Key([]byte(password), salt, params.Iterations, len(digest), sha256.New)

	return subtle.ConstantTimeCompare(digest, candidate) == 1
}
