// Package httpapi exposes the onboarding engine over HTTP. Transport is
// deliberately thin: one turn endpoint, one reset endpoint, a health
// probe.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server is the HTTP adapter over the onboarding service.
type Server struct {
	router chi.Router
	svc    Engine
	log    zerolog.Logger
	apiKey string
}

// NewServer creates and configures the HTTP server. An empty apiKey
// disables auth (local development).
func NewServer(svc Engine, log zerolog.Logger, apiKey string) *Server {
	s := &Server{
		svc:    svc,
		log:    log,
		apiKey: apiKey,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey))
		}

		r.Post("/api/onboarding/ask", s.handleAsk)
		r.Delete("/api/onboarding/{userID}", s.handleReset)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
