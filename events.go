package rnav

import (
	"sync"
)

// LocationEvent is published to subscribers on every settled transition.
type LocationEvent struct {
	From string // settled location before the navigation
	To   string // settled location after the navigation
	// Reverted is true when a rejection left the user on From (To == From).
	Reverted bool
	// Fallback is true when a cold-entry rejection redirected to the
	// configured fallback route.
	Fallback bool
}

// eventHub fans settled transitions out to subscribers.
// Sends never block: a subscriber that has fallen behind misses events
// rather than stalling the navigation pipeline.
type eventHub struct {
	mu   sync.Mutex
	subs map[chan LocationEvent]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{
		subs: make(map[chan LocationEvent]struct{}),
	}
}

// subscribe registers a new buffered subscriber channel.
func (h *eventHub) subscribe() chan LocationEvent {
	ch := make(chan LocationEvent, 8)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch
}

// unsubscribe removes and closes a subscriber channel.
func (h *eventHub) unsubscribe(ch chan LocationEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// publish delivers the event to all current subscribers.
func (h *eventHub) publish(ev LocationEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default: // subscriber is behind; drop rather than block navigation
		}
	}
}
