package repository

import (
	"context"

	"circulate/internal/domain/entity"
	"circulate/internal/errors"

	"github.com/google/uuid"
)

// ErrPatronNotFound is returned when a patron is not found.
var ErrPatronNotFound = errors.New("patron not found")

// ErrDuplicatePatronEmail is returned when a patron with the same email already exists.
var ErrDuplicatePatronEmail = errors.New("patron with this email already exists")

// PatronRepository defines borrower-related database operations.
type PatronRepository interface {
	// CreatePatron persists a new borrower.
	CreatePatron(ctx context.Context, patron *entity.Patron) error

	// FindPatronByID retrieves a patron by their unique ID.
	FindPatronByID(ctx context.Context, id uuid.UUID) (*entity.Patron, error)

	// UpdateNotificationToken replaces the patron's push token. An empty
	// token clears it and stops overdue notices for the patron.
	UpdateNotificationToken(ctx context.Context, id uuid.UUID, token string) error

	// AddToOutstandingFines adjusts the patron's outstanding-fine aggregate
	// by delta (positive when a loan closes with an unpaid fine, negative on
	// payment). The aggregate never goes below zero.
	AddToOutstandingFines(ctx context.Context, id uuid.UUID, delta int64) error
}
