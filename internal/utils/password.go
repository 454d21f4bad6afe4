package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. These are fixed: changing them invalidates every stored
// credential, so any future change needs a rehash-on-login migration.
const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 32
	saltLengthBytes  = 16
)

// HashPassword derives a base64-encoded PBKDF2-SHA256 digest from a plaintext
// password and a base64-encoded salt.
func HashPassword(password, salt string) (string, error) {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	if len(key) == 0 {
		return "", fmt.Errorf("pbkdf2 returned empty digest")
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// GenerateSalt produces a fresh random salt, base64 encoded for storage.
// Called once at registration and at administrative password reset.
func GenerateSalt() (string, error) {
	b := make([]byte, saltLengthBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes for salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// VerifyPassword recomputes the digest for the candidate password and compares
// it to the stored one in constant time.
func VerifyPassword(password, salt, expectedHash string) (bool, error) {
	computed, err := HashPassword(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1, nil
}
