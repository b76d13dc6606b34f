package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind is the severity of a transient user-facing message.
type NotificationKind string

const (
	NotificationInfo  NotificationKind = "INFO"
	NotificationError NotificationKind = "ERROR"
)

// Notification is a toast-style message emitted by an engine command.
// Notifications are delivered to live subscribers only and never stored.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	SessionID uuid.UUID        `json:"session_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewNotification stamps a notification for the given session.
func NewNotification(sessionID uuid.UUID, kind NotificationKind, title, message string) Notification {
	return Notification{
		ID:        uuid.New(),
		SessionID: sessionID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
