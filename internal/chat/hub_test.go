package chat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"citykitch/internal/chat"
	"citykitch/models"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := chat.NewHub()

	ch1, cancel1 := hub.Subscribe("req-1")
	defer cancel1()
	ch2, cancel2 := hub.Subscribe("req-1")
	defer cancel2()

	thread := []models.Message{{ID: "m1", RequestID: "req-1", Body: "hello"}}
	hub.Publish("req-1", thread)

	require.Equal(t, thread, <-ch1)
	require.Equal(t, thread, <-ch2)
}

func TestPublishIsScopedToRequest(t *testing.T) {
	hub := chat.NewHub()

	ch, cancel := hub.Subscribe("req-a")
	defer cancel()

	hub.Publish("req-b", []models.Message{{ID: "m1"}})

	select {
	case got := <-ch:
		t.Fatalf("subscriber of req-a received thread for req-b: %v", got)
	default:
	}
}

func TestCancelRemovesSubscription(t *testing.T) {
	hub := chat.NewHub()

	ch, cancel := hub.Subscribe("req-1")
	require.Equal(t, 1, hub.Subscribers("req-1"))

	cancel()
	require.Equal(t, 0, hub.Subscribers("req-1"))

	// Channel is closed after cancel.
	_, open := <-ch
	require.False(t, open)

	// Publishing after the last unsubscribe is a no-op.
	hub.Publish("req-1", []models.Message{{ID: "m1"}})
}

func TestCancelIsIdempotent(t *testing.T) {
	hub := chat.NewHub()
	_, cancel := hub.Subscribe("req-1")
	cancel()
	cancel()
	require.Equal(t, 0, hub.Subscribers("req-1"))
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := chat.NewHub()

	// Never drained: its buffer fills and further publishes are dropped for
	// it, while the healthy subscriber keeps receiving.
	_, cancelSlow := hub.Subscribe("req-1")
	defer cancelSlow()
	fast, cancelFast := hub.Subscribe("req-1")
	defer cancelFast()

	for i := 0; i < 100; i++ {
		hub.Publish("req-1", []models.Message{{ID: "m"}})
		<-fast
	}
}
