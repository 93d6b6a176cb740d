// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// promptwizard server. It organizes routes into the JSON API and the
// server-rendered preview page, each with its own middleware stack.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptwizard/internal/handlers"
	"promptwizard/internal/middleware"
)

// Deps holds everything the router wires together.
type Deps struct {
	Sessions middleware.SessionGetter
	Assist   *handlers.Assist
	Auth     *handlers.Auth
	Configs  *handlers.Configs
	Preview  *handlers.Preview

	// AILimiter guards the suggestion endpoint across instances.
	AILimiter *middleware.SharedRateLimiter
	// AuthLimiter guards sign-in and sign-up per process.
	AuthLimiter *middleware.RateLimiter

	// Static holds the page assets served at /static/.
	Static fs.FS

	// SecureCookies marks the CSRF cookie Secure.
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)

	// JSON API. Clients send JSON bodies, which a cross-site form cannot
	// produce, so no CSRF token is required here.
	r.Route("/api", func(r chi.Router) {
		r.With(d.AILimiter.Middleware).Post("/ai-assist", d.Assist.AIAssist)
		r.Post("/suggestions/apply", d.Assist.ApplySuggestions)

		r.Get("/catalog", handlers.Catalog)
		r.Post("/generate", handlers.Generate)
		r.Post("/generate/bundle", handlers.Bundle)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(d.AuthLimiter.Middleware)
				r.Post("/signup", d.Auth.SignUp)
				r.Post("/signin", d.Auth.SignIn)
			})
			r.Post("/signout", d.Auth.SignOut)
			r.With(middleware.RequireAuth).Get("/me", d.Auth.Me)
		})

		// Saved configurations, scoped to the signed-in user.
		r.Route("/configs", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", d.Configs.List)
			r.Post("/", d.Configs.Save)
			r.Get("/{id}", d.Configs.Get)
			r.Delete("/{id}", d.Configs.Delete)
		})

		r.NotFound(apiNotFound)
	})

	// Preview page: form posts carry the CSRF token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(d.SecureCookies))
		r.Get("/", d.Preview.Show)
		r.Post("/", d.Preview.Submit)
		r.Post("/bundle", d.Preview.Bundle)
	})

	// Static assets for the preview page.
	if d.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(d.Static)))
	}

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// apiNotFound keeps unknown API paths on the JSON error shape.
func apiNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not found"}`))
}
