package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/auth"
	"github.com/uptraa/platform/internal/models"
	appErr "github.com/uptraa/platform/pkg/errors"
	"github.com/uptraa/platform/pkg/logger"
)

type userKey struct{}

const (
	msgUnauthorized = "Unauthorized"
	msgUserGone     = "User associated with this token does not exist"
)

// ProfileLoader loads the user a session token names.
type ProfileLoader interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// Auth requires a Bearer session token and puts the caller's profile (with
// skills) into the request context. Every failure is a 401, including a
// panic while the caller is being resolved.
func Auth(tokens *auth.TokenManager, users ProfileLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, msg := authenticate(r, tokens, users)
			if profile == nil {
				writeError(w, http.StatusUnauthorized, msg)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), profile)))
		})
	}
}

// authenticate resolves the caller or returns the 401 message to send.
func authenticate(r *http.Request, tokens *auth.TokenManager, users ProfileLoader) (profile *models.Profile, msg string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.L().Error("auth: panic while authenticating",
				zap.String("request_id", GetRequestID(r.Context())), zap.Any("panic", rec))
			profile, msg = nil, msgUnauthorized
		}
	}()

	raw, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		return nil, msgUnauthorized
	}
	claims, err := tokens.VerifySession(raw)
	if err != nil {
		return nil, msgUnauthorized
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, msgUnauthorized
	}

	profile, err = users.GetProfile(r.Context(), id)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, msgUserGone
		}
		logger.L().Error("auth: load user failed",
			zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
		return nil, msgUnauthorized
	}
	if profile == nil {
		return nil, msgUnauthorized
	}
	return profile, ""
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// WithUser stores the authenticated profile in ctx.
func WithUser(ctx context.Context, p *models.Profile) context.Context {
	return context.WithValue(ctx, userKey{}, p)
}

// CurrentUser returns the profile stored by Auth.
func CurrentUser(ctx context.Context) (*models.Profile, bool) {
	p, ok := ctx.Value(userKey{}).(*models.Profile)
	return p, ok && p != nil
}
