package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inndoor/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateTokens(t *testing.T) {
	svc := newTestJWTService(t)
	accountID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(accountID, []string{"AGENT"})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	accountID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(accountID, []string{"TENANT"})
	require.NoError(t, err)

	// Access token validates against the access secret
	token, err := svc.ValidateToken(accessToken, "test-access-secret")
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, accountID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	// Refresh token carries no roles
	token, err = svc.ValidateToken(refreshToken, "test-refresh-secret")
	require.NoError(t, err)
	claims, ok = token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	assert.NotContains(t, claims, "roles")

	// Wrong secret fails
	_, err = svc.ValidateToken(accessToken, "wrong-secret")
	assert.Error(t, err)

	// Garbage fails
	_, err = svc.ValidateToken("not.a.token", "test-access-secret")
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
