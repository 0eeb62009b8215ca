package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	_ "github.com/uptraa/platform/docs"
	"github.com/uptraa/platform/internal/api/handlers"
	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/models"
	"github.com/uptraa/platform/internal/validation"
	appErr "github.com/uptraa/platform/pkg/errors"
	"github.com/uptraa/platform/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

// stubUsers answers every read with one fixed profile.
type stubUsers struct{ profile *models.Profile }

func (s stubUsers) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if id != s.profile.ID {
		return nil, appErr.NotFound("User not found")
	}
	return s.profile, nil
}

func (s stubUsers) UpdateProfile(context.Context, *models.Profile, validation.UpdateProfileInput) (*models.Profile, error) {
	return s.profile, nil
}

func (s stubUsers) UpdateProfilePicture(context.Context, *models.Profile, *media.File) (*models.Profile, error) {
	return s.profile, nil
}

func (s stubUsers) UpdateResume(context.Context, *models.Profile, *media.File) (*models.Profile, error) {
	return s.profile, nil
}

func (s stubUsers) AllSkills(context.Context) ([]models.Skill, error) { return []models.Skill{}, nil }

func (s stubUsers) UserSkills(context.Context, uuid.UUID) ([]models.SkillName, error) {
	return []models.SkillName{}, nil
}

func (s stubUsers) AddSkill(context.Context, uuid.UUID, string) (*models.UserSkill, error) {
	return &models.UserSkill{}, nil
}

func (s stubUsers) RemoveSkill(context.Context, uuid.UUID, string) (*models.UserSkill, error) {
	return &models.UserSkill{}, nil
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func TestUserRouter(t *testing.T) {
	p := &models.Profile{ID: uuid.New(), Name: "Jo", Skills: []string{}}
	r := NewUserRouter(Options{RateLimitRPS: 100, RateLimitBurst: 100}, handlers.NewUserHandler(stubUsers{profile: p}), denyAll)

	tests := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/api/user/skills", http.StatusOK},
		{http.MethodGet, "/api/user/" + p.ID.String(), http.StatusOK},
		{http.MethodGet, "/api/user/" + uuid.NewString(), http.StatusNotFound},
		{http.MethodGet, "/api/user/me", http.StatusUnauthorized},
		{http.MethodPut, "/api/user/me", http.StatusUnauthorized},
		{http.MethodPut, "/api/user/me/resume", http.StatusUnauthorized},
		{http.MethodDelete, "/api/user/me/skills", http.StatusUnauthorized},
		{http.MethodGet, "/api/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.status, rr.Code, tt.method+" "+tt.path)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	}
}

func TestUnknownRouteIsJSON(t *testing.T) {
	r := NewPackagesRouter(Options{RateLimitRPS: 1, RateLimitBurst: 1}, handlers.NewUploadHandler(nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/packages/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rr.Body.String())
}

func TestPackagesRouterIsNotRateLimited(t *testing.T) {
	r := NewPackagesRouter(Options{RateLimitRPS: 1, RateLimitBurst: 1}, handlers.NewUploadHandler(nil))
	for i := 0; i < 30; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.0.0.5:7000"
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimitClientAddress(t *testing.T) {
	p := &models.Profile{ID: uuid.New(), Skills: []string{}}

	hit := func(r http.Handler, forwarded string) int {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.0.0.5:7000"
		req.Header.Set("X-Forwarded-For", forwarded)
		r.ServeHTTP(rr, req)
		return rr.Code
	}

	direct := NewUserRouter(Options{RateLimitRPS: 1, RateLimitBurst: 1}, handlers.NewUserHandler(stubUsers{profile: p}), denyAll)
	assert.Equal(t, http.StatusOK, hit(direct, "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(direct, "203.0.113.2"))

	proxied := NewUserRouter(Options{RateLimitRPS: 1, RateLimitBurst: 1, TrustProxy: true}, handlers.NewUserHandler(stubUsers{profile: p}), denyAll)
	assert.Equal(t, http.StatusOK, hit(proxied, "203.0.113.1"))
	assert.Equal(t, http.StatusOK, hit(proxied, "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, hit(proxied, "203.0.113.1"))
}

func TestDocsServed(t *testing.T) {
	r := NewPackagesRouter(Options{}, handlers.NewUploadHandler(nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"/auth/register"`)
	assert.Contains(t, rr.Body.String(), `"basePath": "/api"`)
}
