package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"citykitch/internal/auth"
	"citykitch/internal/blobstore"
	"citykitch/internal/chat"
)

const maxBodyBytes = 1048576

// Handler wires storage, auth, the chat hub and the blob store into the
// HTTP surface.
type Handler struct {
	Store  StorageInterface
	Auth   *auth.Service
	Hub    *chat.Hub
	Blobs  blobstore.Store
	Logger zerolog.Logger

	// AdminEmail is the account granted the admin role at registration.
	AdminEmail string
}

func NewHandler(store StorageInterface, authSvc *auth.Service, hub *chat.Hub, blobs blobstore.Store, logger zerolog.Logger, adminEmail string) *Handler {
	return &Handler{
		Store:      store,
		Auth:       authSvc,
		Hub:        hub,
		Blobs:      blobs,
		Logger:     logger,
		AdminEmail: adminEmail,
	}
}

// PingHandler answers "ok" for health checks.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// decodeJSON reads a size-capped request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
