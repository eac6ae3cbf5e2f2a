package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("staff-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-123", claims.StaffID)
	assert.Equal(t, "admin", claims.Username)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("staff-123", "admin")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := m.GenerateAccessToken("staff-123", "admin")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasherWithCost(4) // low cost to keep tests fast

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}
