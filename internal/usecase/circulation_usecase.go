// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"circulate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateLoanInput defines the data required to check out a copy of a book.
type CreateLoanInput struct {
	PatronID uuid.UUID
	BookID   uuid.UUID
	// IssuedBy is the staff member performing the checkout.
	IssuedBy uuid.UUID
	// DueAt optionally overrides the default loan period.
	DueAt *time.Time
}

// ReturnLoanInput defines the data required to return a borrowed copy.
type ReturnLoanInput struct {
	LoanID uuid.UUID
	// ReturnedBy is the staff member accepting the return.
	ReturnedBy uuid.UUID
}

// RenewLoanInput defines the data required to renew an active loan.
type RenewLoanInput struct {
	LoanID uuid.UUID
	// RenewedBy is the staff member performing the renewal.
	RenewedBy uuid.UUID
	// PatronID, when set, must match the loan's patron.
	PatronID *uuid.UUID
}

// PayFineInput defines a payment against a loan's outstanding fine.
type PayFineInput struct {
	LoanID uuid.UUID
	Amount int64
}

// MarkLostInput defines the data required to mark a loan as lost.
type MarkLostInput struct {
	LoanID uuid.UUID
	// MarkedBy is the staff member recording the loss.
	MarkedBy uuid.UUID
}

// --- Output DTOs ---

// ReturnLoanOutput returns the closed loan together with the fine assessed
// at return time, if any.
type ReturnLoanOutput struct {
	Loan       *entity.Loan
	FineAmount int64
}

// SweepOutput reports the result of an overdue sweep.
type SweepOutput struct {
	// Processed counts every loan whose status or fine was updated.
	Processed int
	// NewlyOverdue counts the loans transitioned from active to overdue.
	NewlyOverdue int
}

// CirculationUsecase defines the interface for the borrow lifecycle.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CirculationUsecase interface {
	// CreateLoan checks out one copy of a book to a patron after verifying
	// eligibility and reserving a copy atomically.
	CreateLoan(ctx context.Context, input CreateLoanInput) (*entity.Loan, error)

	// ReturnLoan closes an open loan, releases the copy, and assesses the
	// final fine for overdue loans.
	ReturnLoan(ctx context.Context, input ReturnLoanInput) (*ReturnLoanOutput, error)

	// RenewLoan extends an active loan's due date and records the renewal.
	RenewLoan(ctx context.Context, input RenewLoanInput) (*entity.Loan, error)

	// PayFine applies a payment against a loan's outstanding fine.
	PayFine(ctx context.Context, input PayFineInput) (*entity.Loan, error)

	// MarkLost closes a loan as lost, assesses the maximum fine, and
	// removes the copy from the book's inventory.
	MarkLost(ctx context.Context, input MarkLostInput) (*entity.Loan, error)

	// SweepOverdue transitions past-due loans to overdue and refreshes
	// their accrued fines.
	SweepOverdue(ctx context.Context, now time.Time) (*SweepOutput, error)

	// GetLoan retrieves a loan with its renewal history.
	GetLoan(ctx context.Context, loanID uuid.UUID) (*entity.Loan, error)

	// ListPatronLoans retrieves all loans for a patron, open and closed.
	ListPatronLoans(ctx context.Context, patronID uuid.UUID) ([]*entity.Loan, error)

	// GetLoanReceipt generates a scannable QR receipt for a loan.
	GetLoanReceipt(ctx context.Context, loanID uuid.UUID) ([]byte, error)

	// ResolveLoanReceipt resolves a scanned receipt back to its loan.
	ResolveLoanReceipt(ctx context.Context, receiptData string) (*entity.Loan, error)
}
