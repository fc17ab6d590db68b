package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patron is a registered borrower. The active-loan set is not stored on the
// patron; it is derived from open loans so that it can never drift from the
// loan records themselves. OutstandingFineTotal aggregates the unpaid fines
// of closed loans and is maintained by the circulation engine.
type Patron struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	NotificationToken    string    `json:"-"` // optional FCM token for overdue notices
	OutstandingFineTotal int64     `json:"outstanding_fine_total"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
