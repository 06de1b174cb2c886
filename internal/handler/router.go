package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/healthtrack/healthtrack-go/internal/middleware"
	"github.com/healthtrack/healthtrack-go/internal/repository"
	"github.com/healthtrack/healthtrack-go/internal/static"
)

// NewRouter assembles the full route table. Unrecognized paths fall
// through to the static file server.
func NewRouter(auth *AuthHandler, metrics *MetricHandler, sessions *repository.SessionRepository, webRoot string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth/register", auth.HandleRegister)
	r.Post("/api/auth/login", auth.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(sessions))
		r.Post("/api/auth/logout", auth.HandleLogout)
		r.Get("/api/user/profile", auth.HandleProfile)

		r.Post("/api/metrics", metrics.HandleCreate)
		r.Get("/api/metrics", metrics.HandleList)
		r.Get("/api/metrics/summary", metrics.HandleSummary)
	})

	r.NotFound(static.Handler(webRoot))
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse("unknown endpoint"))
	})

	return r
}
