package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"citykitch/db"
	"citykitch/internal/auth"
	"citykitch/internal/lifecycle"
	"citykitch/models"
)

// canChat reports whether the principal belongs to the request's thread: the
// owning customer, a caterer with a bid on it, or the admin.
func (h *Handler) canChat(r *http.Request, claims *auth.Claims, request *models.Request) (bool, error) {
	if claims.Role == models.RoleAdmin || request.CustomerID == claims.UserID {
		return true, nil
	}
	if claims.Role != models.RoleCaterer {
		return false, nil
	}
	return h.Store.HasCatererBid(r.Context(), request.ID, claims.UserID)
}

type sendMessageInput struct {
	Body string `json:"body"`
}

// SendMessageHandler handles POST /api/requests/{requestId}/messages. On
// success the full recomputed thread is pushed to every live subscriber.
func (h *Handler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	requestID := chi.URLParam(r, "requestId")

	request, err := h.Store.GetRequest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}

	ok, err := h.canChat(r, claims, request)
	if err != nil {
		http.Error(w, "Failed to check thread access", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var input sendMessageInput
	if err := decodeJSON(w, r, &input); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	body, err := lifecycle.ValidateMessage(input.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	message := &models.Message{
		ID:          uuid.NewString(),
		RequestID:   requestID,
		SenderID:    claims.UserID,
		SenderEmail: claims.Email,
		Body:        body,
	}
	if err := h.Store.CreateMessage(r.Context(), message); err != nil {
		h.Logger.Error().Err(err).Msg("Failed to create message")
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	if thread, err := h.Store.GetThread(r.Context(), requestID); err == nil {
		h.Hub.Publish(requestID, thread)
	} else {
		h.Logger.Error().Err(err).Msg("Failed to reload thread for publish")
	}

	h.respondJSON(w, http.StatusCreated, message)
}

// GetThreadHandler handles GET /api/requests/{requestId}/messages, returning
// the thread in ascending creation order.
func (h *Handler) GetThreadHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	requestID := chi.URLParam(r, "requestId")

	request, err := h.Store.GetRequest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}

	ok, err := h.canChat(r, claims, request)
	if err != nil {
		http.Error(w, "Failed to check thread access", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	thread, err := h.Store.GetThread(r.Context(), requestID)
	if err != nil {
		http.Error(w, "Failed to get messages", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, thread)
}

// StreamThreadHandler handles GET /api/requests/{requestId}/messages/stream.
// It sends the current thread immediately, then the full thread again on
// every append, as server-sent events. The subscription is torn down when
// the client disconnects.
func (h *Handler) StreamThreadHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	requestID := chi.URLParam(r, "requestId")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	request, err := h.Store.GetRequest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}

	allowed, err := h.canChat(r, claims, request)
	if err != nil || !allowed {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	updates, cancel := h.Hub.Subscribe(requestID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	thread, err := h.Store.GetThread(r.Context(), requestID)
	if err != nil {
		http.Error(w, "Failed to get messages", http.StatusInternalServerError)
		return
	}
	writeThreadEvent(w, thread)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case thread, ok := <-updates:
			if !ok {
				return
			}
			writeThreadEvent(w, thread)
			flusher.Flush()
		}
	}
}

func writeThreadEvent(w http.ResponseWriter, thread []models.Message) {
	payload, err := json.Marshal(thread)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: thread\ndata: %s\n\n", payload)
}
