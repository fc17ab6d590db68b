package service

import (
	"context"
	"time"
)

// OverdueNoticeEvent is published when a sweep first marks a loan overdue.
// Delivery is best-effort: a publish failure never fails the sweep.
type OverdueNoticeEvent struct {
	RequestID         string    `json:"request_id,omitempty"` // For distributed tracing
	LoanID            string    `json:"loan_id"`
	PatronID          string    `json:"patron_id"`
	BookID            string    `json:"book_id"`
	BookTitle         string    `json:"book_title"`
	DueAt             time.Time `json:"due_at"`
	FineAmount        int64     `json:"fine_amount"`
	NotificationToken string    `json:"notification_token,omitempty"` // Patron's FCM token, if registered
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOverdueNotice publishes an overdue-notice event for async processing
	PublishOverdueNotice(ctx context.Context, event *OverdueNoticeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
