package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	NotificationLevelSuccess NotificationLevel = "success"
	NotificationLevelError   NotificationLevel = "error"
	NotificationLevelInfo    NotificationLevel = "info"
)

// Notification is a transient user-facing message. Every failure in the
// gateway ends up here instead of crashing anything; the UI drains the queue
// and shows toasts.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Retryable bool              `json:"retryable"`
	CreatedAt time.Time         `json:"createdAt"`
}
