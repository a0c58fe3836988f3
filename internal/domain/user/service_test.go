// internal/domain/user/service_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", normalizeEmail("Ana@Example.com"))
	assert.Equal(t, "ana@example.com", normalizeEmail("  ANA@EXAMPLE.COM "))
	assert.Equal(t, "ana@example.com", normalizeEmail("ana@example.com"))
}

// The service queries by the normalized email while the BeforeCreate hook
// canonicalizes what gets stored. The two must agree or a mixed-case
// registration becomes unreachable at login time.
func TestNormalizeEmail_MatchesStoredForm(t *testing.T) {
	u := User{Email: "Ana@Example.com", Name: "Ana", Password: "hashed"}
	require.NoError(t, u.BeforeCreate(nil))

	assert.Equal(t, u.Email, normalizeEmail("Ana@Example.com"))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleClient, u.Role)
}
