package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Hex-encoded salt stored as the fixed-length prefix of the record.
	saltLength = 64
	// PBKDF2-HMAC-SHA512 work factor.
	hashIterations = 100_000
	hashKeyLength  = sha512.Size

	storedRecordLength = saltLength + hashKeyLength*2
)

// HashPassword derives a salted PBKDF2-SHA512 hash and returns it as a
// single opaque string: 64 hex chars of salt followed by the hex digest.
// Two calls with the same password produce different records.
func HashPassword(password string) (string, error) {
	raw := make([]byte, 60)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read salt entropy: %w", err)
	}
	sum := sha256.Sum256(raw)
	salt := hex.EncodeToString(sum[:])

	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha512.New)
	return salt + hex.EncodeToString(key), nil
}

// CheckPasswordHash re-derives the candidate with the stored salt and
// compares in constant time. A structurally invalid record is simply a
// failed verification, never a panic.
func CheckPasswordHash(password, stored string) bool {
	if len(stored) != storedRecordLength {
		return false
	}
	salt := stored[:saltLength]
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha512.New)
	derived := hex.EncodeToString(key)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored[saltLength:])) == 1
}
