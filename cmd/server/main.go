package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"github.com/sjpathak2211/ai-dashboard/internal/ai"
	"github.com/sjpathak2211/ai-dashboard/internal/db"
	"github.com/sjpathak2211/ai-dashboard/internal/handlers"
	"github.com/sjpathak2211/ai-dashboard/internal/middleware"
	"github.com/sjpathak2211/ai-dashboard/internal/roles"
)

func main() {
	database, err := db.New(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "default-secret-key-change-in-production"
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	marshal := ai.NewClient(os.Getenv("ANTHROPIC_API_KEY"))
	h := handlers.New(database, store, marshal, roles.DefaultPolicy{})

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(store))

		r.Get("/api/me", h.Me)
		r.Get("/api/backlog", h.GetBacklog)
		r.Get("/api/projects", h.ListProjects)
		r.Get("/api/metrics", h.Metrics)
		r.Get("/api/activity", h.RecentActivity)
		r.Get("/api/activity/mine", h.MyActivity)

		r.Post("/api/requests", h.CreateRequest)
		r.Get("/api/requests/mine", h.MyRequests)
		r.Patch("/api/requests/{id}", h.UpdateRequest)

		r.Post("/api/marshal", h.MarshalProxy)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(store))

		r.Get("/api/requests", h.ListRequests)
		r.Post("/api/requests/{id}/convert", h.ConvertRequest)
		r.Put("/api/backlog", h.UpdateBacklog)
		r.Patch("/api/projects/{id}", h.UpdateProject)
		r.Delete("/api/projects/{id}", h.DeleteProject)
	})

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = "0.0.0.0:5000"
	}

	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
