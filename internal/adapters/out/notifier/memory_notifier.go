package notifier

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// maxPending caps the queue; when the surface never drains (e.g. headless
// use) the oldest notifications are dropped first.
const maxPending = 100

// MemoryNotifier is the toast queue: services push transient messages, the
// HTTP surface drains them.
type MemoryNotifier struct {
	mu      sync.Mutex
	pending []domain.Notification
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (n *MemoryNotifier) Success(message string) {
	n.push(domain.NotificationLevelSuccess, message, false)
}

func (n *MemoryNotifier) Error(message string, retryable bool) {
	n.push(domain.NotificationLevelError, message, retryable)
}

func (n *MemoryNotifier) Info(message string) {
	n.push(domain.NotificationLevelInfo, message, false)
}

func (n *MemoryNotifier) Drain() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	drained := n.pending
	n.pending = nil
	return drained
}

func (n *MemoryNotifier) push(level domain.NotificationLevel, message string, retryable bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = append(n.pending, domain.Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		Retryable: retryable,
		CreatedAt: time.Now(),
	})

	if len(n.pending) > maxPending {
		n.pending = n.pending[len(n.pending)-maxPending:]
	}
}
