package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/gametime-api/internal/config"
	"github.com/heartmarshall/gametime-api/internal/transport/middleware"
)

// NewRouter mounts the health endpoints at the root and the API under /api/v1.
// Middleware order: request id, request log, panic recovery, CORS.
func NewRouter(
	submissions *SubmissionHandler,
	health *HealthHandler,
	cors config.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cors),
	)

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vocabulary", Vocabulary)

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", submissions.Create)
			r.Get("/", submissions.List)
			r.Get("/{id}", submissions.Get)
			r.Patch("/{id}", submissions.Update)
			r.Put("/{id}", submissions.Update)
			r.Delete("/{id}", submissions.Delete)
		})

		r.Get("/games/{gameTitle}/stats", submissions.GameStats)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
