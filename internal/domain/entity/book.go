// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is an inventory-bearing catalog entry. TotalCopies counts every
// physical copy the library owns; AvailableCopies counts those on the shelf.
// The ledger invariant 0 <= AvailableCopies <= TotalCopies must hold at all
// times, and AvailableCopies only ever moves through copy reservation (loan
// creation), copy release (loan closure) or an explicit total-copy adjustment.
type Book struct {
	ID              uuid.UUID `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BorrowedCopies returns the number of copies currently out on loan.
func (b *Book) BorrowedCopies() int {
	return b.TotalCopies - b.AvailableCopies
}
