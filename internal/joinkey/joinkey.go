// Package joinkey generates and checks survey join keys: unguessable,
// URL-safe tokens that let a user join a survey without an invitation.
package joinkey

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

const (
	// byteLength random bytes encode to exactly Length characters.
	byteLength = 9
	Length     = 12
)

var encoding = base64.RawURLEncoding

// random is the entropy source; tests replace it to simulate failures.
var random io.Reader = rand.Reader

// Generate returns a fresh 12-character join key.
func Generate() (string, error) {
	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", err
	}
	return encoding.EncodeToString(buf), nil
}

// IsValid reports whether key has the join key shape: 12 characters of the
// URL-safe base64 alphabet. It does not check that a survey uses the key.
func IsValid(key string) bool {
	if len(key) != Length {
		return false
	}
	_, err := encoding.DecodeString(key)
	return err == nil
}
