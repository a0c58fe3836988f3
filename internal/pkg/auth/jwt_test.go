// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
)

func testJWTManager() *JWTManager {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-api-test"
	cfg.JWT.Secret = "test-secret-key-for-unit-tests"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour
	return NewJWTManager(cfg)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := testJWTManager()

	token, err := manager.GenerateAccessToken("user-123", "client@example.com", "CLIENT")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "client@example.com", claims.Email)
	assert.Equal(t, "CLIENT", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	manager := testJWTManager()

	token, err := manager.GenerateRefreshToken("user-123", "client@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	manager := testJWTManager()

	token, err := manager.GenerateAccessToken("user-123", "client@example.com", "CLIENT")
	require.NoError(t, err)

	other := testJWTManager()
	other.config.JWT.Secret = "a-completely-different-secret"

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("Bearer"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
