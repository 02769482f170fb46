package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, RoleRecruiter)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RoleRecruiter, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	tok, err := svc.GenerateAccessToken(uuid.New(), RoleSeeker)
	require.NoError(t, err)

	other := NewHMACService("other", time.Minute)
	_, err = other.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGenerateRejectsUnknownRole(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	_, err := svc.GenerateAccessToken(uuid.New(), "admin")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("", time.Minute).GenerateAccessToken(uuid.New(), RoleSeeker)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
