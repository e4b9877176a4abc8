package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-jwt-signing-0001",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "marketbay-test",
		MaxRefreshCount:        3,
	})
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "buyer@example.com",
		Role:   "customer",
	}
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, input.Email, claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, parsed)
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-secret-00000001",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "marketbay-test",
		MaxRefreshCount:        3,
	})

	pair, err := other.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-jwt-signing-0001",
		AccessTokenExpiration:  -1 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "marketbay-test",
	})

	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	newPair, err := svc.RefreshTokenPair(pair.RefreshToken, input.Email, "vendor")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(newPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "vendor", claims.Role, "refreshed access token should carry the current role")

	refreshClaims, err := svc.ValidateRefreshToken(newPair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshClaims.RefreshCount)
}

func TestRefreshTokenPairMaxCount(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	token := pair.RefreshToken
	for i := 0; i < 3; i++ {
		newPair, err := svc.RefreshTokenPair(token, input.Email, input.Role)
		require.NoError(t, err, "refresh %d should succeed", i+1)
		token = newPair.RefreshToken
	}

	_, err = svc.RefreshTokenPair(token, input.Email, input.Role)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestClaimsRoleHelpers(t *testing.T) {
	c := &Claims{Role: "admin"}

	assert.True(t, c.HasRole("admin"))
	assert.False(t, c.HasRole("customer"))
	assert.True(t, c.HasAnyRole("vendor", "admin"))
	assert.False(t, c.HasAnyRole("vendor", "customer"))
}

func TestClaimsTimeHelpers(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	assert.False(t, claims.GetIssuedAtTime().IsZero())
	assert.True(t, claims.GetExpiresAtTime().After(time.Now()))
	assert.Greater(t, claims.GetRemainingTTL(), time.Duration(0))

	empty := &Claims{}
	assert.True(t, empty.GetIssuedAtTime().IsZero())
	assert.Equal(t, time.Duration(0), empty.GetRemainingTTL())
}
