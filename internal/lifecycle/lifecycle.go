// Package lifecycle holds the rules shared by every view of a catering
// request: which status transitions are legal, how dashboards partition the
// request set, and the preconditions for attaching bids and messages.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"citykitch/models"
)

var (
	ErrRequestNotOpen = errors.New("request is no longer accepting bids")
	ErrEmptyMessage   = errors.New("message text must not be empty")
)

// transitions is the forward-only status graph. Completed is terminal.
var transitions = map[models.RequestStatus][]models.RequestStatus{
	models.RequestOpen:      {models.RequestPending, models.RequestBooked},
	models.RequestPending:   {models.RequestBooked, models.RequestCompleted},
	models.RequestBooked:    {models.RequestCompleted},
	models.RequestCompleted: {},
}

// CanTransition reports whether a request may move from one status to
// another. Backward moves are never allowed.
func CanTransition(from, to models.RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateNewRequest checks a request before it is ever written. A valid
// request always starts life as open.
func ValidateNewRequest(r *models.Request) error {
	if !models.ValidEventType(r.EventType) {
		return fmt.Errorf("invalid eventType %q", r.EventType)
	}
	if r.GuestCount < 1 {
		return errors.New("guestCount must be at least 1")
	}
	if r.EventDate.IsZero() {
		return errors.New("eventDate is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if r.Budget < 0 {
		return errors.New("budget must not be negative")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}

// ValidateNewBid checks the submission preconditions: the request must still
// be open and the proposal non-empty. The one-bid-per-caterer rule lives in
// the storage layer where concurrent submissions are actually serialized.
func ValidateNewBid(request *models.Request, b *models.Bid) error {
	if request.Status != models.RequestOpen {
		return ErrRequestNotOpen
	}
	if b.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if strings.TrimSpace(b.Proposal) == "" {
		return errors.New("proposal is required")
	}
	return nil
}

// ValidateMessage trims and checks chat input; the trimmed form is what gets
// persisted.
func ValidateMessage(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", ErrEmptyMessage
	}
	return trimmed, nil
}

// CustomerTabs splits a customer's requests into the active and completed
// dashboard tabs. The split is total: every request lands in exactly one tab.
type CustomerTabs struct {
	Active    []models.Request `json:"active"`
	Completed []models.Request `json:"completed"`
}

func PartitionForCustomer(requests []models.Request) CustomerTabs {
	tabs := CustomerTabs{
		Active:    []models.Request{},
		Completed: []models.Request{},
	}
	for _, r := range requests {
		if r.Status == models.RequestCompleted {
			tabs.Completed = append(tabs.Completed, r)
		} else {
			tabs.Active = append(tabs.Active, r)
		}
	}
	return tabs
}

// Board is the caterer's view of the full job board, joined in memory with
// that caterer's own bids.
type Board struct {
	// Available: open requests the caterer has not bid on yet.
	Available []models.Request `json:"available"`
	// Mine: requests with a bid from this caterer. A request with a pending
	// bid belongs here whatever its stored status says; the bid's existence
	// is the source of truth for "engaged".
	Mine []models.Request `json:"mine"`
	// Closed: booked or completed requests the caterer never bid on.
	Closed []models.Request `json:"closed"`
}

func PartitionForCaterer(requests []models.Request, ownBids []models.Bid) Board {
	bidByRequest := make(map[string]bool, len(ownBids))
	for _, b := range ownBids {
		bidByRequest[b.RequestID] = true
	}

	board := Board{
		Available: []models.Request{},
		Mine:      []models.Request{},
		Closed:    []models.Request{},
	}
	for _, r := range requests {
		switch {
		case bidByRequest[r.ID]:
			board.Mine = append(board.Mine, r)
		case r.Status == models.RequestOpen:
			board.Available = append(board.Available, r)
		default:
			board.Closed = append(board.Closed, r)
		}
	}
	return board
}

// Counts are the aggregate figures shown on dashboard headers.
type Counts struct {
	Open      int `json:"open"`
	Engaged   int `json:"engaged"`
	Completed int `json:"completed"`
}

func CountByStatus(requests []models.Request) Counts {
	var c Counts
	for _, r := range requests {
		switch r.Status {
		case models.RequestOpen:
			c.Open++
		case models.RequestCompleted:
			c.Completed++
		default:
			c.Engaged++
		}
	}
	return c
}
