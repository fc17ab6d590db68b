package service

import "context"

// NotificationService sends push notifications to patron devices.
// Used only for best-effort conveniences such as overdue notices.
type NotificationService interface {
	// SendNotification sends a push notification to a single device token.
	SendNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
