package domain

import "context"

const (
	TypeJob    = "JOB"
	TypeWorker = "WORKER"
	TypeSystem = "SYSTEM"
)

// Notification is immutable once created and is consumed by polling
// reads, newest first. Read stays false; nothing in the current flows
// marks a notification as read.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	Timestamp int64  `json:"timestamp"`
}

type Repository interface {
	Insert(ctx context.Context, n Notification) error
	// ListByUser returns the user's notifications newest first.
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
}
