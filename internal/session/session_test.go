package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestOpaqueToken(t *testing.T) {
	s := New("  12|abcdef  ", false)

	tok, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "12|abcdef", tok)
	assert.False(t, s.IsSuperAdmin())
	assert.True(t, s.ExpiresAt().IsZero())
	assert.True(t, s.Active())
}

func TestEmptyToken(t *testing.T) {
	s := New("", true)
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestJWTClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s := New(signed(t, jwt.MapClaims{
		"sub":            "admin-7",
		"exp":            exp.Unix(),
		"is_super_admin": true,
	}), false)

	assert.True(t, s.IsSuperAdmin())
	assert.Equal(t, "admin-7", s.Subject())
	assert.True(t, exp.Equal(s.ExpiresAt()))
}

func TestSuperAdmin_ClaimOrFlag(t *testing.T) {
	claimed := signed(t, jwt.MapClaims{"is_super_admin": true})
	plain := signed(t, jwt.MapClaims{"sub": "admin-8"})

	assert.True(t, New(claimed, false).IsSuperAdmin())
	assert.True(t, New(plain, true).IsSuperAdmin())
	assert.False(t, New(plain, false).IsSuperAdmin())

	s := New(claimed, false)
	s.Start(plain, false)
	assert.False(t, s.IsSuperAdmin())
}

func TestExpiredJWT(t *testing.T) {
	s := New(signed(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}), false)
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err := s.Token()
	assert.ErrorIs(t, err, ErrExpired)
	assert.False(t, s.Active())
}

func TestClear(t *testing.T) {
	s := New("token", true)
	s.Clear()

	assert.False(t, s.IsSuperAdmin())
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoToken)
}
