package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/uptraa/platform/internal/api/handlers"
	mw "github.com/uptraa/platform/internal/api/middleware"
)

// Options are the settings shared by every service router.
type Options struct {
	// RateLimitRPS of zero disables per-client rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only set it when a trusted proxy fronts the service.
	TrustProxy  bool
	CORSOrigins []string
	Ready       handlers.ReadyFunc
}

func newBase(opt Options) *chi.Mux {
	r := chi.NewRouter()

	if opt.TrustProxy {
		r.Use(chimid.RealIP)
	}
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(opt.CORSOrigins...))
	if opt.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(opt.RateLimitRPS, opt.RateLimitBurst))
	}
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler(opt.Ready)
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// API docs; the document is registered by the blank import of docs in each binary.
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Route not found"}`))
	})
	return r
}

// NewAuthRouter mounts the auth service under /api/auth.
func NewAuthRouter(opt Options, h *handlers.AuthHandler) http.Handler {
	r := newBase(opt)
	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", h.Register)
		ar.Post("/login", h.Login)
		ar.Post("/forgot-password", h.ForgotPassword)
		ar.Post("/reset-password", h.ResetPassword)
	})
	return r
}

// NewUserRouter mounts the user service under /api/user. authn guards the /me routes.
func NewUserRouter(opt Options, h *handlers.UserHandler, authn func(http.Handler) http.Handler) http.Handler {
	r := newBase(opt)
	r.Route("/api/user", func(ur chi.Router) {
		ur.Get("/skills", h.AllSkills)

		ur.Group(func(protected chi.Router) {
			protected.Use(authn)
			protected.Get("/me", h.Me)
			protected.Put("/me", h.Update)
			protected.Put("/me/profile-picture", h.UpdateProfilePicture)
			protected.Put("/me/resume", h.UpdateResume)
			protected.Get("/me/skills", h.MySkills)
			protected.Post("/me/skills", h.AddSkill)
			protected.Delete("/me/skills", h.RemoveSkill)
		})

		ur.Get("/{id}", h.Get)
	})
	return r
}

// NewPackagesRouter mounts the packages service under /api/packages. Its
// callers are the other services, so it is never rate limited.
func NewPackagesRouter(opt Options, h *handlers.UploadHandler) http.Handler {
	opt.RateLimitRPS = 0
	r := newBase(opt)
	r.Route("/api/packages", func(pr chi.Router) {
		pr.Post("/upload", h.Upload)
	})
	return r
}
