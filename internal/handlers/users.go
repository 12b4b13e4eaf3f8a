package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"citykitch/db"
	"citykitch/internal/auth"
)

// GetUsersHandler handles GET /api/users for the admin dashboard.
func (h *Handler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.GetUsers(r.Context())
	if err != nil {
		http.Error(w, "Failed to get users", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

// DeleteUserHandler handles DELETE /api/users/{userId}. Deletion removes the
// account only; the user's requests, bids and messages stay behind and keep
// showing up in the admin request tab as orphans.
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	userID := chi.URLParam(r, "userId")

	if userID == claims.UserID {
		http.Error(w, "Admin cannot delete their own account", http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		h.Logger.Error().Err(err).Msg("Failed to delete user")
		http.Error(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
