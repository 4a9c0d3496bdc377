package out

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// NotifierPort collects transient user-facing messages (toasts). Drain hands
// out the pending queue and empties it.
type NotifierPort interface {
	Success(message string)
	Error(message string, retryable bool)
	Info(message string)
	Drain() []domain.Notification
}
