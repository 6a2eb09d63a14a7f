package storage

import (
	"context"
	"time"
)

// NotificationLogEntry records a single notification delivery attempt.
type NotificationLogEntry struct {
	MessageID string    `json:"message_id"`
	Kind      string    `json:"kind"`
	Recipient string    `json:"recipient"`
	Provider  string    `json:"provider"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"` // "sent" or "failed"
	ErrorMsg  string    `json:"error_msg"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationStore defines the interface for persisting notification delivery logs.
type NotificationStore interface {
	// LogNotification records a notification delivery attempt.
	LogNotification(ctx context.Context, entry NotificationLogEntry) error
	// ListNotifications returns the most recent notification log entries, up to limit.
	ListNotifications(ctx context.Context, limit int) ([]NotificationLogEntry, error)
}
