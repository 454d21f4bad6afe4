package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const tempPasswordBytes = 5

// GenerateTemporaryPassword produces a short one-time password for
// administrative resets. The output is uppercase alphanumeric with visually
// ambiguous characters substituted (I and L become 1, O becomes 0, U becomes
// a random digit) so it survives being read out over the phone.
func GenerateTemporaryPassword() (string, error) {
	raw, err := GenerateSecureRandomString(tempPasswordBytes)
	if err != nil {
		return "", err
	}
	password := strings.ToUpper(raw)
	password = strings.ReplaceAll(password, "I", "1")
	password = strings.ReplaceAll(password, "O", "0")
	password = strings.ReplaceAll(password, "L", "1")
	if strings.Contains(password, "U") {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to pick substitution digit: %w", err)
		}
		password = strings.ReplaceAll(password, "U", n.String())
	}
	return password, nil
}
