package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"citykitch/db"
	"citykitch/internal/auth"
	"citykitch/internal/lifecycle"
	"citykitch/models"
)

type createBidInput struct {
	RequestID string  `json:"requestId"`
	Amount    float64 `json:"amount"`
	Proposal  string  `json:"proposal"`
}

// CreateBidHandler handles POST /api/bids/new. Submitting a bid does not
// move the request out of open; that happens only when the customer accepts.
func (h *Handler) CreateBidHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var input createBidInput
	if err := decodeJSON(w, r, &input); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if input.RequestID == "" {
		http.Error(w, "requestId is required", http.StatusBadRequest)
		return
	}

	request, err := h.Store.GetRequest(r.Context(), input.RequestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}

	bid := &models.Bid{
		ID:           uuid.NewString(),
		RequestID:    input.RequestID,
		CatererID:    claims.UserID,
		CatererEmail: claims.Email,
		Amount:       input.Amount,
		Proposal:     input.Proposal,
		Status:       models.BidPending,
	}
	if err := lifecycle.ValidateNewBid(request, bid); err != nil {
		if errors.Is(err, lifecycle.ErrRequestNotOpen) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Advisory check first for a friendly message; the unique index settles
	// the race between two tabs submitting at once.
	exists, err := h.Store.HasCatererBid(r.Context(), input.RequestID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to check existing bids", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "You already have a bid on this request", http.StatusConflict)
		return
	}

	if err := h.Store.CreateBid(r.Context(), bid); err != nil {
		if errors.Is(err, db.ErrDuplicateBid) {
			http.Error(w, "You already have a bid on this request", http.StatusConflict)
			return
		}
		h.Logger.Error().Err(err).Msg("Failed to create bid")
		http.Error(w, "Failed to create bid", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusCreated, bid)
}

// GetMyBidsHandler handles GET /api/bids/my.
func (h *Handler) GetMyBidsHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	bids, err := h.Store.GetCatererBids(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to get bids", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, bids)
}

// GetBidsForRequestHandler handles GET /api/requests/{requestId}/bids.
// Only the request owner or the admin may inspect the bid list.
func (h *Handler) GetBidsForRequestHandler(w http.ResponseWriter, r *http.Request) {
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

	bids, err := h.Store.GetBidsForRequest(r.Context(), requestID)
	if err != nil {
		http.Error(w, "Failed to get bids", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, bids)
}

// AcceptBidHandler handles PUT /api/bids/{bidId}/accept. Acceptance is the
// single trigger for open -> booked; it also rejects every other pending bid
// in the same write.
func (h *Handler) AcceptBidHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	bidID := chi.URLParam(r, "bidId")

	bid, err := h.Store.GetBid(r.Context(), bidID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bid not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get bid", http.StatusInternalServerError)
		return
	}

	request, err := h.Store.GetRequest(r.Context(), bid.RequestID)
	if err != nil {
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}
	if request.CustomerID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if !lifecycle.CanTransition(request.Status, models.RequestBooked) {
		http.Error(w, "Request can no longer be booked", http.StatusConflict)
		return
	}

	if err := h.Store.AcceptBid(r.Context(), bid.RequestID, bidID, bid.CatererID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bid is no longer pending", http.StatusConflict)
			return
		}
		h.Logger.Error().Err(err).Msg("Failed to accept bid")
		http.Error(w, "Failed to accept bid", http.StatusInternalServerError)
		return
	}

	bid.Status = models.BidAccepted
	h.respondJSON(w, http.StatusOK, bid)
}

// RejectBidHandler handles PUT /api/bids/{bidId}/reject. Rejecting a bid
// leaves the request open for other caterers.
func (h *Handler) RejectBidHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	bidID := chi.URLParam(r, "bidId")

	bid, err := h.Store.GetBid(r.Context(), bidID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bid not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get bid", http.StatusInternalServerError)
		return
	}

	request, err := h.Store.GetRequest(r.Context(), bid.RequestID)
	if err != nil {
		http.Error(w, "Failed to get request", http.StatusInternalServerError)
		return
	}
	if request.CustomerID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if bid.Status != models.BidPending {
		http.Error(w, "Bid is no longer pending", http.StatusConflict)
		return
	}

	if err := h.Store.UpdateBidStatus(r.Context(), bidID, models.BidRejected); err != nil {
		http.Error(w, "Failed to reject bid", http.StatusInternalServerError)
		return
	}

	bid.Status = models.BidRejected
	h.respondJSON(w, http.StatusOK, bid)
}
