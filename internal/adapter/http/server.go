// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"caltrack/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	foods    *app.FoodService
	meals    *app.MealService
	workouts *app.WorkoutService
	summary  *app.SummaryService
	log      *zap.Logger
}

// New creates a Server wired to the given application services.
func New(
	auth *app.AuthService,
	foods *app.FoodService,
	meals *app.MealService,
	workouts *app.WorkoutService,
	summary *app.SummaryService,
	log *zap.Logger,
) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{auth: auth, foods: foods, meals: meals, workouts: workouts, summary: summary, log: log}
}

// Handler returns the root http.Handler for the application.
//
// Routes, all under /api:
//
//	GET  /health
//	POST /register
//	POST /login
//	GET  /foods
//	POST /log-meal
//	POST /log-workout
//	GET  /summary/{user_id}
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogging)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})
		r.Get("/foods", s.handleListFoods)
		r.Get("/summary/{user_id}", s.handleSummary)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/log-meal", s.handleLogMeal)
			r.Post("/log-workout", s.handleLogWorkout)
		})
	})

	return r
}
