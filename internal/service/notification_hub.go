package service

import (
	"sync"

	"greenfund-demo/internal/core/domain"
	"greenfund-demo/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotificationHub fans engine notifications out to live subscribers.
// Delivery is best effort: a subscriber whose buffer is full misses the
// notification, and nothing is kept for subscribers that join later.
type NotificationHub struct {
	mu          sync.RWMutex
	subscribers map[ports.SubscriptionID]chan domain.Notification
	buffer      int
	closed      bool
	log         zerolog.Logger
}

// NewNotificationHub creates a hub whose subscriber channels hold buffer notifications.
func NewNotificationHub(buffer int, log zerolog.Logger) *NotificationHub {
	if buffer < 1 {
		buffer = 1
	}
	return &NotificationHub{
		subscribers: make(map[ports.SubscriptionID]chan domain.Notification),
		buffer:      buffer,
		log:         log,
	}
}

// Subscribe registers a new subscriber. On a closed hub the returned channel
// is already closed.
func (h *NotificationHub) Subscribe() (ports.SubscriptionID, <-chan domain.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := ports.SubscriptionID(uuid.Must(uuid.NewV7()).String())
	ch := make(chan domain.Notification, h.buffer)
	if h.closed {
		close(ch)
		return id, ch
	}
	h.subscribers[id] = ch

	h.log.Debug().
		Str("subscriber_id", string(id)).
		Int("total_subscribers", len(h.subscribers)).
		Msg("notification subscriber added")

	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *NotificationHub) Unsubscribe(id ports.SubscriptionID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	close(ch)
}

// Publish delivers n to every subscriber without blocking.
func (h *NotificationHub) Publish(n domain.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for id, ch := range h.subscribers {
		select {
		case ch <- n:
		default:
			h.log.Warn().
				Str("subscriber_id", string(id)).
				Str("title", n.Title).
				Msg("notification dropped, subscriber buffer full")
		}
	}
}

// SubscriberCount returns the number of live subscribers.
func (h *NotificationHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close closes every subscriber channel. Later publishes are ignored.
func (h *NotificationHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
}
