// Package router wires the HTTP routes and middleware chains for the
// storyhub API. Reads are public; publishing, editing, liking, and
// bookmarking require a bearer token.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storyhub/internal/auth"
	"storyhub/internal/handlers"
	"storyhub/internal/middleware"
)

// New creates the configured chi router with all middleware and route
// groups wired up. The returned RateLimiter must be stopped on shutdown.
func New(tokens *auth.Tokens, stories *handlers.Stories, bookmarks *handlers.Bookmarks, authH *handlers.Auth) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Credential endpoints are rate limited to slow brute forcing.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.Route("/auth", func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
	})

	r.Route("/stories", func(r chi.Router) {
		// Browsing is public.
		r.Get("/", stories.List)
		r.Get("/{id}", stories.Get)

		// Everything else belongs to an authenticated user.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))
			r.Post("/", stories.Create)
			r.Get("/user/{userId}", stories.ListByUser)
			r.Put("/{id}", stories.Update)
			r.Post("/like", stories.ToggleLike)
		})
	})

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Post("/", bookmarks.Add)
		r.Delete("/", bookmarks.Remove)
		r.Get("/user/{userId}", bookmarks.ListByUser)
	})

	return r, authLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
