package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mthompson/stickit/internal/api/handlers"
	"github.com/mthompson/stickit/internal/api/middleware"
	"github.com/mthompson/stickit/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
	categoryHandler := handlers.NewCategoryHandler(services.Category, services.Auth)
	postItHandler := handlers.NewPostItHandler(services.PostIt, services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/dashboard", dashboardHandler.Get)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", categoryHandler.Create)
				r.Get("/", categoryHandler.List)
				r.Get("/{id}", categoryHandler.Get)
				r.Put("/{id}", categoryHandler.Update)
				r.Delete("/{id}", categoryHandler.Delete)
			})

			r.Route("/postits", func(r chi.Router) {
				r.Post("/", postItHandler.Create)
				r.Get("/", postItHandler.List)
				r.Get("/completed", postItHandler.ListCompleted)
				r.Get("/{id}", postItHandler.Get)
				r.Put("/{id}", postItHandler.Update)
				r.Delete("/{id}", postItHandler.Delete)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
				r.Delete("/", profileHandler.Delete)
			})
		})
	})

	return r
}
