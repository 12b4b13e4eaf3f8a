package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"citykitch/internal/lifecycle"
	"citykitch/models"
)

func validRequest() *models.Request {
	return &models.Request{
		EventType:   models.EventWedding,
		GuestCount:  50,
		EventDate:   time.Now().Add(30 * 24 * time.Hour),
		Location:    "Lakeside pavilion",
		Budget:      5000,
		Description: "Buffet dinner for a wedding reception",
		Status:      models.RequestOpen,
	}
}

func TestCanTransitionForwardOnly(t *testing.T) {
	require.True(t, lifecycle.CanTransition(models.RequestOpen, models.RequestBooked))
	require.True(t, lifecycle.CanTransition(models.RequestOpen, models.RequestPending))
	require.True(t, lifecycle.CanTransition(models.RequestPending, models.RequestBooked))
	require.True(t, lifecycle.CanTransition(models.RequestBooked, models.RequestCompleted))

	// No backward moves, no self moves, completed is terminal.
	require.False(t, lifecycle.CanTransition(models.RequestBooked, models.RequestOpen))
	require.False(t, lifecycle.CanTransition(models.RequestPending, models.RequestOpen))
	require.False(t, lifecycle.CanTransition(models.RequestOpen, models.RequestOpen))
	require.False(t, lifecycle.CanTransition(models.RequestCompleted, models.RequestOpen))
	require.False(t, lifecycle.CanTransition(models.RequestCompleted, models.RequestBooked))
	require.False(t, lifecycle.CanTransition(models.RequestOpen, models.RequestCompleted))
}

func TestValidateNewRequest(t *testing.T) {
	require.NoError(t, lifecycle.ValidateNewRequest(validRequest()))

	cases := []struct {
		name   string
		mutate func(*models.Request)
	}{
		{"bad event type", func(r *models.Request) { r.EventType = "gala" }},
		{"zero guests", func(r *models.Request) { r.GuestCount = 0 }},
		{"negative guests", func(r *models.Request) { r.GuestCount = -3 }},
		{"missing date", func(r *models.Request) { r.EventDate = time.Time{} }},
		{"blank location", func(r *models.Request) { r.Location = "   " }},
		{"negative budget", func(r *models.Request) { r.Budget = -1 }},
		{"blank description", func(r *models.Request) { r.Description = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(r)
			require.Error(t, lifecycle.ValidateNewRequest(r))
		})
	}
}

func TestValidateNewBid(t *testing.T) {
	request := validRequest()
	bid := &models.Bid{Amount: 4500, Proposal: "Full service buffet"}
	require.NoError(t, lifecycle.ValidateNewBid(request, bid))

	booked := validRequest()
	booked.Status = models.RequestBooked
	require.ErrorIs(t, lifecycle.ValidateNewBid(booked, bid), lifecycle.ErrRequestNotOpen)

	require.Error(t, lifecycle.ValidateNewBid(request, &models.Bid{Amount: -1, Proposal: "x"}))
	require.Error(t, lifecycle.ValidateNewBid(request, &models.Bid{Amount: 100, Proposal: "  "}))
}

func TestValidateMessage(t *testing.T) {
	body, err := lifecycle.ValidateMessage("  hello there  ")
	require.NoError(t, err)
	require.Equal(t, "hello there", body)

	_, err = lifecycle.ValidateMessage("   ")
	require.ErrorIs(t, err, lifecycle.ErrEmptyMessage)
}

func TestPartitionForCustomerIsTotalAndDisjoint(t *testing.T) {
	requests := []models.Request{
		{ID: "a", Status: models.RequestOpen},
		{ID: "b", Status: models.RequestPending},
		{ID: "c", Status: models.RequestBooked},
		{ID: "d", Status: models.RequestCompleted},
		{ID: "e", Status: models.RequestCompleted},
	}

	tabs := lifecycle.PartitionForCustomer(requests)
	require.Len(t, tabs.Active, 3)
	require.Len(t, tabs.Completed, 2)

	// Every request appears in exactly one tab.
	seen := map[string]int{}
	for _, r := range tabs.Active {
		seen[r.ID]++
		require.NotEqual(t, models.RequestCompleted, r.Status)
	}
	for _, r := range tabs.Completed {
		seen[r.ID]++
		require.Equal(t, models.RequestCompleted, r.Status)
	}
	require.Len(t, seen, len(requests))
	for id, n := range seen {
		require.Equalf(t, 1, n, "request %s in more than one tab", id)
	}
}

func TestPartitionForCustomerEmpty(t *testing.T) {
	tabs := lifecycle.PartitionForCustomer(nil)
	require.NotNil(t, tabs.Active)
	require.NotNil(t, tabs.Completed)
	require.Empty(t, tabs.Active)
	require.Empty(t, tabs.Completed)
}

func TestPartitionForCaterer(t *testing.T) {
	requests := []models.Request{
		{ID: "open-no-bid", Status: models.RequestOpen},
		{ID: "open-my-bid", Status: models.RequestOpen},
		{ID: "booked-my-bid", Status: models.RequestBooked},
		{ID: "booked-other", Status: models.RequestBooked},
		{ID: "done-other", Status: models.RequestCompleted},
	}
	ownBids := []models.Bid{
		{ID: "b1", RequestID: "open-my-bid", Status: models.BidPending},
		{ID: "b2", RequestID: "booked-my-bid", Status: models.BidAccepted},
	}

	board := lifecycle.PartitionForCaterer(requests, ownBids)

	require.Equal(t, []string{"open-no-bid"}, ids(board.Available))
	require.ElementsMatch(t, []string{"open-my-bid", "booked-my-bid"}, ids(board.Mine))
	require.ElementsMatch(t, []string{"booked-other", "done-other"}, ids(board.Closed))
}

// A request stuck at open with a bid already attached still counts as the
// caterer's engagement, not an available job.
func TestPartitionForCatererBidWinsOverStatus(t *testing.T) {
	requests := []models.Request{{ID: "r1", Status: models.RequestOpen}}
	ownBids := []models.Bid{{ID: "b1", RequestID: "r1", Status: models.BidPending}}

	board := lifecycle.PartitionForCaterer(requests, ownBids)
	require.Empty(t, board.Available)
	require.Equal(t, []string{"r1"}, ids(board.Mine))
}

func TestCountByStatus(t *testing.T) {
	counts := lifecycle.CountByStatus([]models.Request{
		{Status: models.RequestOpen},
		{Status: models.RequestOpen},
		{Status: models.RequestPending},
		{Status: models.RequestBooked},
		{Status: models.RequestCompleted},
	})
	require.Equal(t, 2, counts.Open)
	require.Equal(t, 2, counts.Engaged)
	require.Equal(t, 1, counts.Completed)
}

func ids(requests []models.Request) []string {
	out := []string{}
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}
