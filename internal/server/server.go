package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/liftlog/internal/app"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	app    *app.App
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(a *app.App, log *slog.Logger) *Server {
	s := &Server{
		app:    a,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/exercises", s.handleListExercises)

		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates", s.handleCreateTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)

		r.Get("/history", s.handleHistory)
		r.Get("/dashboard", s.handleDashboard)

		r.Get("/view", s.handleGetView)
		r.Post("/view", s.handleSetView)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", s.handleSessionStatus)
			r.Post("/start", s.handleStartSession)
			r.Post("/sets/toggle", s.handleToggleSet)
			r.Post("/sets/update", s.handleUpdateSet)
			r.Post("/finish", s.handleFinishSession)
			r.Post("/cancel", s.handleCancelSession)
		})
	})
}
