package usecase

import (
	"context"

	domainErrors "circulate/internal/domain/errors"

	"github.com/google/uuid"
)

// EligibilityOutput reports whether a patron may borrow a book and, when
// not, the first rule that blocked the request.
type EligibilityOutput struct {
	Eligible bool
	// Reason is empty when Eligible is true.
	Reason domainErrors.IneligibleReason
	// Message is a human-readable explanation of the reason.
	Message string
}

// EligibilityUsecase defines the interface for borrow eligibility checks.
type EligibilityUsecase interface {
	// CheckEligibility evaluates the borrowing rules for a patron and book
	// without creating a loan. Rules are evaluated in a fixed order and the
	// first failure wins.
	CheckEligibility(ctx context.Context, patronID, bookID uuid.UUID) (*EligibilityOutput, error)
}
