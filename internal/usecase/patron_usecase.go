package usecase

import (
	"context"

	"circulate/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterPatronInput defines the data required to register a borrower.
type RegisterPatronInput struct {
	Name  string
	Email string

	// NotificationToken is an optional FCM token for overdue notices.
	NotificationToken string
}

// PatronUsecase defines the interface for borrower membership management.
type PatronUsecase interface {
	// RegisterPatron creates a new borrower account. Email must be unique.
	RegisterPatron(ctx context.Context, input RegisterPatronInput) (*entity.Patron, error)

	// GetPatron retrieves a patron by ID.
	GetPatron(ctx context.Context, patronID uuid.UUID) (*entity.Patron, error)

	// SetNotificationToken replaces the patron's push token. An empty token
	// opts the patron out of overdue notices.
	SetNotificationToken(ctx context.Context, patronID uuid.UUID, token string) error
}
