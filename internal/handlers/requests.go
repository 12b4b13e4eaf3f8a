package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"citykitch/db"
	"citykitch/internal/auth"
	"citykitch/internal/lifecycle"
	"citykitch/models"
)

type createRequestInput struct {
	EventType   models.EventType `json:"eventType"`
	GuestCount  int              `json:"guestCount"`
	EventDate   time.Time        `json:"eventDate"`
	Location    string           `json:"location"`
	Budget      float64          `json:"budget"`
	Description string           `json:"description"`
}

// CreateRequestHandler handles POST /api/requests/new. The new request
// always starts open and is owned by the signed-in customer.
func (h *Handler) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var input createRequestInput
	if err := decodeJSON(w, r, &input); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	request := &models.Request{
		ID:            uuid.NewString(),
		CustomerID:    claims.UserID,
		CustomerEmail: claims.Email,
		EventType:     input.EventType,
		GuestCount:    input.GuestCount,
		EventDate:     input.EventDate,
		Location:      input.Location,
		Budget:        input.Budget,
		Description:   input.Description,
		Status:        models.RequestOpen,
	}
	if err := lifecycle.ValidateNewRequest(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.CreateRequest(r.Context(), request); err != nil {
		h.Logger.Error().Err(err).Msg("Failed to create request")
		http.Error(w, "Failed to create request", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusCreated, request)
}

// GetMyRequestsHandler handles GET /api/requests/my, returning the
// customer's requests split into active and completed tabs.
func (h *Handler) GetMyRequestsHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	requests, err := h.Store.GetCustomerRequests(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to get requests", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, lifecycle.PartitionForCustomer(requests))
}

// GetBoardHandler handles GET /api/requests/board: the full job board every
// caterer sees, partitioned against their own bids.
func (h *Handler) GetBoardHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	requests, err := h.Store.GetRequests(r.Context())
	if err != nil {
		http.Error(w, "Failed to get requests", http.StatusInternalServerError)
		return
	}
	bids, err := h.Store.GetCatererBids(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to get bids", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, lifecycle.PartitionForCaterer(requests, bids))
}

// GetRequestsHandler handles GET /api/requests for the admin dashboard,
// including requests whose owner account has since been deleted.
func (h *Handler) GetRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Store.GetRequests(r.Context())
	if err != nil {
		http.Error(w, "Failed to get requests", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, requests)
}

// GetRequestHandler handles GET /api/requests/{requestId}.
func (h *Handler) GetRequestHandler(w http.ResponseWriter, r *http.Request) {
	request, err := h.Store.GetRequest(r.Context(), chi.URLParam(r, "requestId"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, request)
}

// CompleteRequestHandler handles PUT /api/requests/{requestId}/complete.
// Completion is an admin action; completed is terminal.
func (h *Handler) CompleteRequestHandler(w http.ResponseWriter, r *http.Request) {
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

	if !lifecycle.CanTransition(request.Status, models.RequestCompleted) {
		http.Error(w, "Request cannot be completed from its current status", http.StatusConflict)
		return
	}

	if err := h.Store.UpdateRequestStatus(r.Context(), requestID, models.RequestCompleted); err != nil {
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	request.Status = models.RequestCompleted
	h.respondJSON(w, http.StatusOK, request)
}

// DeleteRequestHandler handles DELETE /api/requests/{requestId}. Only the
// owning customer or the admin may delete; bids and messages cascade with it.
func (h *Handler) DeleteRequestHandler(w http.ResponseWriter, r *http.Request) {
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

	if claims.Role != models.RoleAdmin && request.CustomerID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.Store.DeleteRequest(r.Context(), requestID); err != nil {
		http.Error(w, "Failed to delete request", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
