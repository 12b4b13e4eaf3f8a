package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"citykitch/internal/auth"
	"citykitch/internal/middleware"
	"citykitch/models"
)

// Router assembles the full HTTP surface. mediaDir, when non-empty, is
// served under /media/ for portfolio images.
func (h *Handler) Router(mediaDir string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogging(h.Logger))
	r.Use(middleware.CORS())

	rateLimiter := middleware.NewRateLimiter(rate.Limit(20), 40)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)

		r.Group(func(r chi.Router) {
			r.Use(rateLimiter.Middleware())
			r.Post("/auth/register", h.RegisterHandler)
			r.Post("/auth/login", h.LoginHandler)
		})

		// Public caterer profile page.
		r.Get("/caterers/{catererId}", h.GetCatererProfileHandler)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.Authentication)

			// Customer dashboard and request lifecycle.
			r.With(auth.RequireRole(models.RoleCustomer)).
				Post("/requests/new", h.CreateRequestHandler)
			r.With(auth.RequireRole(models.RoleCustomer)).
				Get("/requests/my", h.GetMyRequestsHandler)
			r.With(auth.RequireRole(models.RoleCaterer)).
				Get("/requests/board", h.GetBoardHandler)
			r.With(auth.RequireRole(models.RoleAdmin)).
				Get("/requests", h.GetRequestsHandler)
			r.Get("/requests/{requestId}", h.GetRequestHandler)
			r.With(auth.RequireRole(models.RoleAdmin)).
				Put("/requests/{requestId}/complete", h.CompleteRequestHandler)
			r.With(auth.RequireRole(models.RoleCustomer, models.RoleAdmin)).
				Delete("/requests/{requestId}", h.DeleteRequestHandler)

			// Bids.
			r.With(auth.RequireRole(models.RoleCaterer)).
				Post("/bids/new", h.CreateBidHandler)
			r.With(auth.RequireRole(models.RoleCaterer)).
				Get("/bids/my", h.GetMyBidsHandler)
			r.Get("/requests/{requestId}/bids", h.GetBidsForRequestHandler)
			r.With(auth.RequireRole(models.RoleCustomer)).
				Put("/bids/{bidId}/accept", h.AcceptBidHandler)
			r.With(auth.RequireRole(models.RoleCustomer)).
				Put("/bids/{bidId}/reject", h.RejectBidHandler)

			// Per-request chat thread.
			r.Post("/requests/{requestId}/messages", h.SendMessageHandler)
			r.Get("/requests/{requestId}/messages", h.GetThreadHandler)
			r.Get("/requests/{requestId}/messages/stream", h.StreamThreadHandler)

			// Admin moderation.
			r.With(auth.RequireRole(models.RoleAdmin)).
				Get("/users", h.GetUsersHandler)
			r.With(auth.RequireRole(models.RoleAdmin)).
				Delete("/users/{userId}", h.DeleteUserHandler)

			// Caterer profile management.
			r.With(auth.RequireRole(models.RoleCaterer)).
				Put("/profile", h.UpsertProfileHandler)
			r.With(auth.RequireRole(models.RoleCaterer)).
				Post("/profile/images", h.UploadImageHandler)
			r.With(auth.RequireRole(models.RoleCaterer)).
				Delete("/profile/images/{handle}", h.DeleteImageHandler)
		})
	})

	if mediaDir != "" {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir)))
		r.Get("/media/*", fs.ServeHTTP)
	}

	return r
}
