package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"acronymer/internal/domain"
)

// Severity classifies a toast
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// DefaultDuration is how long a toast stays visible unless set
const DefaultDuration = 4 * time.Second

const subscriberBuffer = 16

// Notification is a short-lived message for the user.
// Key is translated by the consumer; Message is the fallback text.
type Notification struct {
	ID        string
	Severity  Severity
	Key       domain.TranslationKey
	Message   string
	Subject   string
	Duration  time.Duration
	CreatedAt time.Time
}

// Notifier triggers toasts
type Notifier interface {
	Notify(n Notification)
}

// Hub fans notifications out to subscribers
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan Notification
	nextID uint64
	closed bool
	logger *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[uint64]chan Notification),
		logger: logger,
	}
}

var _ Notifier = (*Hub)(nil)

// Notify delivers n to every subscriber without blocking.
// A subscriber whose buffer is full misses the notification.
func (h *Hub) Notify(n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Severity == "" {
		n.Severity = SeverityInfo
	}
	if n.Duration <= 0 {
		n.Duration = DefaultDuration
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	for id, ch := range h.subs {
		select {
		case ch <- n:
		default:
			h.logger.Warn("Dropping notification for slow subscriber",
				zap.Uint64("subscriber", id),
				zap.String("notification_id", n.ID),
			)
		}
	}
}

// Subscribe returns a channel of notifications and a cancel func that
// closes it
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Notification, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// Subscribers returns the number of active subscribers
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscriber channel; later notifications are dropped
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
