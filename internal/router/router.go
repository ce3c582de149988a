// Package router sets up all HTTP routes and middleware chains for the
// Inkwell API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
)

// Options carries the optional middleware pieces. Authenticate resolves
// bearer tokens into identities; RateLimit, when non-nil, throttles the
// public read endpoints.
type Options struct {
	Authenticate func(http.Handler) http.Handler
	RateLimit    func(http.Handler) http.Handler
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, admin *handlers.Admin, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	if opts.Authenticate != nil {
		r.Use(opts.Authenticate)
	}

	// Health check — no auth, no rate limit.
	r.Get("/health", healthHandler)

	// Public read API.
	r.Group(func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit)
		}

		r.Route("/api/articles", func(r chi.Router) {
			r.Get("/", public.ListArticles)
			r.Get("/stats", public.Stats)
			r.Get("/slug/{slug}", public.GetArticleBySlug)
			r.Get("/{id}", public.GetArticleByID)
		})

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", public.ListCategories)
			r.Get("/{id}", public.GetCategory)
		})

		r.Route("/api/tags", func(r chi.Router) {
			r.Get("/", public.ListTags)
			r.Get("/{id}", public.GetTag)
		})
	})

	// Admin mutation API — identity required, role enforced in the service.
	r.Route("/api/admin/articles", func(r chi.Router) {
		r.Post("/", admin.CreateArticle)
		r.Put("/{id}", admin.UpdateArticle)
		r.Delete("/{id}", admin.DeleteArticle)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
