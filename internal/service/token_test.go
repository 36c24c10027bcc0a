package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/jovial-backend/internal/models"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenManager_ParseAccess(t *testing.T) {
	m := NewTokenManager(testSecret)
	userID := uuid.New()

	actor, err := m.ParseAccess(signToken(t, testSecret, jwt.MapClaims{
		"sub":  userID.String(),
		"role": "owner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}))
	require.NoError(t, err)
	assert.Equal(t, models.Actor{UserID: userID, Role: models.RoleOwner}, actor)

	actor, err = m.ParseAccess(signToken(t, testSecret, jwt.MapClaims{
		"sub":  userID.String(),
		"role": "admin",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, actor.Role)
	assert.True(t, actor.Authenticated())
}

func TestTokenManager_ParseAccess_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret)

	cases := map[string]string{
		"wrong secret": signToken(t, "another-secret-another-secret-12345", jwt.MapClaims{"sub": uuid.NewString()}),
		"expired":      signToken(t, testSecret, jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(-time.Minute).Unix()}),
		"no subject":   signToken(t, testSecret, jwt.MapClaims{"role": "owner"}),
		"bad subject":  signToken(t, testSecret, jwt.MapClaims{"sub": "not-a-uuid"}),
		"garbage":      "abc.def.ghi",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.ParseAccess(token)
			assert.Error(t, err)
		})
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.NewString()}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.ParseAccess(none)
	assert.Error(t, err)
}
