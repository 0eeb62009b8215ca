package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestSessionRoundTrip(t *testing.T) {
	m := NewTokenManager(secret, time.Hour, time.Minute)

	tok, err := m.IssueSession("user-1")
	require.NoError(t, err)

	claims, err := m.VerifySession(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Empty(t, claims.Type)
}

func TestTokenExpires(t *testing.T) {
	m := NewTokenManager(secret, time.Hour, time.Minute)
	issued := time.Now()
	m.now = func() time.Time { return issued }

	tok, err := m.IssueSession("user-1")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = m.VerifySession(tok)
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = m.VerifySession(tok)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestResetAndSessionAreNotInterchangeable(t *testing.T) {
	m := NewTokenManager(secret, time.Hour, time.Minute)

	reset, err := m.IssueReset("a@x.com")
	require.NoError(t, err)
	session, err := m.IssueSession("user-1")
	require.NoError(t, err)

	claims, err := m.VerifyReset(reset)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, TypeReset, claims.Type)

	_, err = m.VerifySession(reset)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.VerifyReset(session)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTampering(t *testing.T) {
	m := NewTokenManager(secret, time.Hour, time.Minute)
	other := NewTokenManager("another-secret-of-length", time.Hour, time.Minute)

	tok, err := other.IssueSession("user-1")
	require.NoError(t, err)
	_, err = m.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	// no exp claim
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-1"}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = m.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)

	// wrong algorithm
	raw, err = jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = m.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	h, err := HashPassword("longenough1")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough1", h)
	assert.True(t, CheckPassword(h, "longenough1"))
	assert.False(t, CheckPassword(h, "longenough2"))
	assert.False(t, CheckPassword("not-a-hash", "longenough1"))

	h2, err := HashPassword("longenough1")
	require.NoError(t, err)
	assert.NotEqual(t, h, h2)
}
