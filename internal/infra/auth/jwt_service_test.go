package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.FakeAPI.AccessSecret = "test_access_secret_key_very_long_for_testing"
	cfg.FakeAPI.RefreshSecret = "test_refresh_secret_key_very_long_for_testing"
	cfg.FakeAPI.AccessTTL = 5 * time.Minute
	cfg.FakeAPI.RefreshTTL = time.Hour

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, "42", accessClaims.Subject)
	assert.NotEmpty(t, accessClaims.ID)

	refreshClaims, err := svc.ValidateToken(refresh, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.TokenType)

	// The client reads the same subject and expiry without the secret.
	claims, ok := entity.Credential{AccessToken: access, RefreshToken: refresh}.Claims()
	require.True(t, ok)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh, service.TokenTypeAccess)
	assert.Error(t, err)
	_, err = svc.ValidateToken(access, service.TokenTypeRefresh)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_Expired(t *testing.T) {
	s, err := NewJWTService(testConfig())
	require.NoError(t, err)
	svc := s.(*jwtService)

	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	access, _, err := svc.GenerateTokens(1)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(access, service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := testConfig()
	cfg.FakeAPI.AccessSecret = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
