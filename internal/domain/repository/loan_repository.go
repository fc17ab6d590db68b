package repository

import (
	"context"
	"time"

	"circulate/internal/domain/entity"
	"circulate/internal/errors"

	"github.com/google/uuid"
)

// ErrLoanNotFound is returned when a loan is not found.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository defines loan-record database operations. Loan rows are
// never deleted; closed loans remain as borrowing history.
type LoanRepository interface {
	// CreateLoan persists a new loan record.
	CreateLoan(ctx context.Context, loan *entity.Loan) error

	// FindLoanByID retrieves a loan with its renewal history.
	FindLoanByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindLoanByIDForUpdate retrieves a loan and row-locks it for the span of
	// the current transaction, serializing concurrent return/renew/pay
	// operations on the same loan.
	FindLoanByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindOpenLoansByPatron retrieves the patron's Active and Overdue loans.
	FindOpenLoansByPatron(ctx context.Context, patronID uuid.UUID) ([]*entity.Loan, error)

	// FindLoansByPatron retrieves the patron's full borrowing history,
	// newest first.
	FindLoansByPatron(ctx context.Context, patronID uuid.UUID) ([]*entity.Loan, error)

	// HasUnpaidFines reports whether any of the patron's loans carries an
	// assessed fine that has not been fully paid.
	HasUnpaidFines(ctx context.Context, patronID uuid.UUID) (bool, error)

	// FindDueLoansForUpdate retrieves all open loans due before cutoff and
	// row-locks them so a sweep cannot race a concurrent return.
	FindDueLoansForUpdate(ctx context.Context, cutoff time.Time) ([]*entity.Loan, error)

	// UpdateLoan persists the loan's mutable fields (status, due date,
	// renewal count, fine, return stamps). Renewal history rows are appended
	// separately and never rewritten.
	UpdateLoan(ctx context.Context, loan *entity.Loan) error

	// AppendRenewalEntry appends one audit row to the loan's renewal history.
	AppendRenewalEntry(ctx context.Context, entry *entity.RenewalEntry) error
}
