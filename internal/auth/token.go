package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed, badly signed and wrongly typed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// TypeReset marks a token that may only authorize a password change.
const TypeReset = "reset"

// Claims is the token payload. Session tokens carry UserID; reset tokens carry
// Email and Type=reset.
type Claims struct {
	UserID string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	Type   string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, sessionTTL, resetTTL time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), sessionTTL: sessionTTL, resetTTL: resetTTL, now: time.Now}
}

// ResetTTL is how long reset tokens (and their cache entries) live.
func (m *TokenManager) ResetTTL() time.Duration { return m.resetTTL }

// Issue signs claims valid for ttl.
func (m *TokenManager) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := m.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	if claims.Subject == "" {
		claims.Subject = claims.UserID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature, algorithm and expiry.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) IssueSession(userID string) (string, error) {
	return m.Issue(Claims{UserID: userID}, m.sessionTTL)
}

// VerifySession accepts only session tokens that name a user.
func (m *TokenManager) VerifySession(token string) (*Claims, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.Type == TypeReset || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) IssueReset(email string) (string, error) {
	return m.Issue(Claims{Email: email, Type: TypeReset, RegisteredClaims: jwt.RegisteredClaims{Subject: email}}, m.resetTTL)
}

// VerifyReset accepts only reset tokens that name an email.
func (m *TokenManager) VerifyReset(token string) (*Claims, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.Type != TypeReset || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
