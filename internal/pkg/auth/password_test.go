// internal/pkg/auth/password_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
)

func testManager() *PasswordManager {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4 // minimum cost, keeps the test fast
	return NewPasswordManager(cfg)
}

func TestValidatePassword(t *testing.T) {
	pm := testManager()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Passw0rd", false},
		{"too short", "Pw1", true},
		{"no uppercase", "password1", true},
		{"no lowercase", "PASSWORD1", true},
		{"no number", "Password", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pm.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	pm := testManager()

	hash, err := pm.HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)

	assert.NoError(t, pm.VerifyPassword("Passw0rd", hash))
	assert.Error(t, pm.VerifyPassword("wrong", hash))
}

func TestHashPassword_RejectsWeakPassword(t *testing.T) {
	pm := testManager()

	_, err := pm.HashPassword("weak")
	assert.Error(t, err)
}
