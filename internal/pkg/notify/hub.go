package notify

import (
	"log/slog"
	"sync"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a user-facing message, rendered by the UI as a toast or a printed line.
type Notification struct {
	Level   Level
	Message string
}

// Hub fans notifications out to subscribers and logs each one.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Notification]struct{}
	logger      *slog.Logger
}

// NewHub creates a new Hub. A nil logger uses slog.Default.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[chan Notification]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new subscriber and returns its channel and a cleanup function
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Notification, 10)
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, ch)
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish sends n to all subscribers
func (h *Hub) Publish(n Notification) {
	if n.Level == LevelError {
		h.logger.Error(n.Message)
	} else {
		h.logger.Info(n.Message)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- n:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

func (h *Hub) Info(message string) {
	h.Publish(Notification{Level: LevelInfo, Message: message})
}

func (h *Hub) Error(message string) {
	h.Publish(Notification{Level: LevelError, Message: message})
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
