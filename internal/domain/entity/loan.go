package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoanStatus describes the lifecycle state of a loan record.
type LoanStatus string

const (
	// LoanActive is an open loan within its due date.
	LoanActive LoanStatus = "ACTIVE"
	// LoanOverdue is an open loan past its due date, as observed by a sweep.
	LoanOverdue LoanStatus = "OVERDUE"
	// LoanReturned is a closed loan whose copy went back on the shelf.
	LoanReturned LoanStatus = "RETURNED"
	// LoanLost is a closed loan whose copy was written off the inventory.
	LoanLost LoanStatus = "LOST"
)

// Fine is the penalty sub-record owned exclusively by its loan.
type Fine struct {
	Amount     int64 `json:"amount"`
	PaidAmount int64 `json:"paid_amount"`
	IsPaid     bool  `json:"is_paid"`
}

// Outstanding returns the unpaid remainder of the fine.
func (f Fine) Outstanding() int64 {
	return f.Amount - f.PaidAmount
}

// RenewalEntry is one append-only audit row recording how a loan's due date
// was extended. Required to reconstruct how a due date was reached.
type RenewalEntry struct {
	ID          uuid.UUID `json:"id"`
	LoanID      uuid.UUID `json:"loan_id"`
	RenewalDate time.Time `json:"renewal_date"`
	NewDueDate  time.Time `json:"new_due_date"`
	RenewedBy   uuid.UUID `json:"renewed_by"`
}

// Loan records one book copy held by one patron for a bounded period. The
// loan references its book and patron weakly; closing a loan never deletes
// either, and the loan itself is retained forever as borrowing history.
//
// Invariant: Status == LoanReturned if and only if ReturnedAt is non-nil.
type Loan struct {
	ID             uuid.UUID      `json:"id"`
	BookID         uuid.UUID      `json:"book_id"`
	PatronID       uuid.UUID      `json:"patron_id"`
	BorrowedAt     time.Time      `json:"borrowed_at"`
	DueAt          time.Time      `json:"due_at"`
	ReturnedAt     *time.Time     `json:"returned_at,omitempty"`
	RenewalCount   int            `json:"renewal_count"`
	Status         LoanStatus     `json:"status"`
	Fine           Fine           `json:"fine"`
	IssuedBy       uuid.UUID      `json:"issued_by"`
	ReturnedBy     *uuid.UUID     `json:"returned_by,omitempty"`
	RenewalHistory []RenewalEntry `json:"renewal_history,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsOpen reports whether the loan still holds a copy.
func (l *Loan) IsOpen() bool {
	return l.Status == LoanActive || l.Status == LoanOverdue
}

// IsOverdueAt reports the loan's effective overdue state at the given time.
// A loan past its due date counts as overdue even before a sweep has
// persisted the OVERDUE status.
func (l *Loan) IsOverdueAt(now time.Time) bool {
	if !l.IsOpen() {
		return false
	}

	return l.Status == LoanOverdue || now.After(l.DueAt)
}

// HasUnpaidFine reports whether the loan carries an assessed, unpaid fine.
func (l *Loan) HasUnpaidFine() bool {
	return l.Fine.Amount > 0 && !l.Fine.IsPaid
}
