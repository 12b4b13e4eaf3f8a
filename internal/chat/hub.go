// Package chat fans out thread updates to live subscribers. The store pushes
// the full recomputed thread on every append, not a diff, so late joiners and
// reconnecting clients need no catch-up protocol.
package chat

import (
	"sync"

	"citykitch/models"
)

const subscriberBuffer = 8

type subscriber struct {
	ch chan []models.Message
}

type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*subscriber]struct{})}
}

// Subscribe registers a listener for one request's thread. The returned
// cancel must be called when the view closes so the hub does not leak a
// standing watch.
func (h *Hub) Subscribe(requestID string) (<-chan []models.Message, func()) {
	sub := &subscriber{ch: make(chan []models.Message, subscriberBuffer)}

	h.mu.Lock()
	if h.subs[requestID] == nil {
		h.subs[requestID] = make(map[*subscriber]struct{})
	}
	h.subs[requestID][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		set, ok := h.subs[requestID]
		if !ok {
			return
		}
		if _, ok := set[sub]; !ok {
			return
		}
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, requestID)
		}
		close(sub.ch)
	}
	return sub.ch, cancel
}

// Publish delivers the current thread to every subscriber of the request.
// A subscriber whose buffer is full is skipped rather than blocking the
// writer; it will receive the next update.
func (h *Hub) Publish(requestID string, thread []models.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[requestID] {
		select {
		case sub.ch <- thread:
		default:
		}
	}
}

// Subscribers reports how many listeners a thread currently has.
func (h *Hub) Subscribers(requestID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[requestID])
}
