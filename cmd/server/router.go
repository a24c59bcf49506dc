package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/finstart-api/internal/api/middleware"
	"github.com/phrazzld/finstart-api/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// newRouter mounts the API under /api plus an unauthenticated health check.
func newRouter(cfg config.ServerConfig, log *slog.Logger, h handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.UserIDHeader},
		ExposedHeaders:   []string{middleware.TraceHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Trace(log))
	r.Use(middleware.UserID(cfg.DefaultUserID))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.catalog.Welcome)
		r.Get("/modules", h.catalog.ListModules)
		r.Get("/modules/{module_id}/lessons", h.lessons.ListModuleLessons)
		r.Get("/lessons/{lesson_id}", h.lessons.GetLesson)
		r.Post("/lessons/generate", h.lessons.GenerateLesson)
		r.Get("/progress", h.progress.GetProgress)
		r.Post("/progress/complete-lesson/{lesson_id}", h.progress.CompleteLesson)
		r.Post("/quiz/submit", h.progress.SubmitQuiz)
		r.Post("/simulations/calculate", h.simulation.Calculate)
		r.Get("/scenarios/{scenario_type}", h.catalog.GetScenario)
	})

	return otelhttp.NewHandler(r, "finstart-api")
}
