// Package password derives and verifies stored login credentials.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the system-wide PBKDF2 work factor.
	DefaultIterations = 100000

	saltLen = 16
	keyLen  = 32
)

// PBKDF2 hashes passwords with PBKDF2-HMAC-SHA256.
// Stored form is base64(salt || key).
type PBKDF2 struct {
	iterations int
	rand       io.Reader
}

// NewPBKDF2 creates a hasher with the given iteration count.
func NewPBKDF2(iterations int) *PBKDF2 {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &PBKDF2{iterations: iterations, rand: rand.Reader}
}

// Hash derives a credential string for plain with a fresh random salt.
func (p *PBKDF2) Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(p.rand, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plain), salt, p.iterations, keyLen, sha256.New)

	buf := make([]byte, 0, saltLen+keyLen)
	buf = append(buf, salt...)
	buf = append(buf, key...)
	return base64.StdEncoding.EncodeToString(buf), nil
}

// Verify reports whether plain matches the stored credential.
// Malformed credentials never match.
func (p *PBKDF2) Verify(plain, encoded string) bool {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != saltLen+keyLen {
		return false
	}

	salt, stored := raw[:saltLen], raw[saltLen:]
	candidate := pbkdf2.Key([]byte(plain), salt, p.iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(stored, candidate) == 1
}
