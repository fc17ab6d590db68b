package entity

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a librarian account. Circulation operations record which staff
// member issued, returned or renewed a loan.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
