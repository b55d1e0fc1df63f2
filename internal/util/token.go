package util

import (
	"crypto/rand"
	"encoding/hex"
)

const sessionTokenBytes = 32

// NewSessionToken returns a random hex token with 256 bits of entropy.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
