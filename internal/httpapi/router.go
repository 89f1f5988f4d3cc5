package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Routes assembles the router with middleware and all endpoints.
// Cross-origin requests are accepted only from the configured origin.
// Note routes are intentionally unguarded, matching the /create and
// /admin route split of the original deployment.
func (s *Server) Routes(log *zap.Logger, corsOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(Recover(log))
	r.Use(Logging(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Route("/create", func(r chi.Router) {
		r.Post("/notes", s.CreateNote)
		r.Get("/notes", s.ListNotes)
		r.Get("/notes/{id}", s.GetNote)
		r.Put("/notes/{id}", s.UpdateNote)
		r.Delete("/notes/{id}", s.DeleteNote)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Get("/get-users", s.GetUsers)
		r.Delete("/delete-user/{id}", s.DeleteUser)
	})

	return r
}
