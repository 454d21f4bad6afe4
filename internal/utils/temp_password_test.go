package utils_test

import (
	"regexp"
	"testing"

	"github.com/contactsapp/contacts-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tempPasswordPattern = regexp.MustCompile(`^[0-9A-F]{10}$`)

func TestGenerateTemporaryPassword_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		password, err := utils.GenerateTemporaryPassword()
		require.NoError(t, err)
		assert.Regexp(t, tempPasswordPattern, password)
		// Ambiguous characters never survive substitution.
		assert.NotContains(t, password, "I")
		assert.NotContains(t, password, "O")
		assert.NotContains(t, password, "L")
		assert.NotContains(t, password, "U")
	}
}

func TestGenerateTemporaryPassword_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		password, err := utils.GenerateTemporaryPassword()
		require.NoError(t, err)
		seen[password] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
