package utils

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// URL-safe alphabet, 64 symbols so a masked random byte maps without bias.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// TokenLength gives 42 bits of entropy, enough that guessing and in-flight
// collisions are both impractical.
const TokenLength = 7

// GenerateShortToken returns a random token of the given length drawn from
// the URL-safe alphabet. Uniqueness is the caller's responsibility.
func GenerateShortToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic("utils: reading random source: " + err.Error())
	}
	for i := range b {
		b[i] = tokenAlphabet[b[i]&63]
	}
	return string(b)
}

// GenerateAPIKey generates a UUID string to be used as an API key
func GenerateAPIKey() string {
	return uuid.NewString()
}
