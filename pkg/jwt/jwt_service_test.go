package jwt

import (
	"testing"
	"time"

	"github.com/pibich/Akivili-UAS/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("some-user-id", domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "some-user-id", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestUserTokenInvalid(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestPurposeTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GeneratePurposeToken(map[string]any{
		"user_id": "some-user-id",
		"purpose": "reset_password",
	}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidatePurposeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "some-user-id", claims["user_id"])
	assert.Equal(t, "reset_password", claims["purpose"])
	assert.Equal(t, "AKIVILI", claims["iss"])
}

func TestPurposeTokenExpired(t *testing.T) {
	service := NewJWTService()

	token, err := service.GeneratePurposeToken(map[string]any{
		"user_id": "some-user-id",
	}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidatePurposeToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
