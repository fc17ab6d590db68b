package errors

import "net/http"

// IneligibleReason identifies why a patron may not initiate a new loan.
// Reasons are evaluated in a fixed order; the first failing reason wins.
type IneligibleReason string

const (
	// ReasonDuplicateActiveLoan - the patron already holds an open loan for this book.
	ReasonDuplicateActiveLoan IneligibleReason = "DUPLICATE_ACTIVE_LOAN"
	// ReasonBorrowLimitReached - the patron's open-loan count is at the borrowing limit.
	ReasonBorrowLimitReached IneligibleReason = "BORROW_LIMIT_REACHED"
	// ReasonHasOverdueLoan - the patron holds at least one overdue loan.
	ReasonHasOverdueLoan IneligibleReason = "HAS_OVERDUE_LOAN"
	// ReasonHasUnpaidFine - the patron has an assessed fine that is not fully paid.
	ReasonHasUnpaidFine IneligibleReason = "HAS_UNPAID_FINE"
	// ReasonBookInactive - the book has been deactivated for borrowing.
	ReasonBookInactive IneligibleReason = "BOOK_INACTIVE"
	// ReasonNoCopiesAvailable - every copy of the book is out on loan.
	ReasonNoCopiesAvailable IneligibleReason = "NO_COPIES_AVAILABLE"
)

// IneligibleError is returned by the eligibility gatekeeper. It carries the
// specific reason so the calling layer can render a precise message instead
// of a generic failure, and so callers can distinguish "never eligible" from
// losing a reservation race (which surfaces ErrNoCopiesAvailable instead).
type IneligibleError struct {
	reason  IneligibleReason
	message string
}

// NewIneligibleError creates an IneligibleError with a rendered message.
func NewIneligibleError(reason IneligibleReason, message string) *IneligibleError {
	return &IneligibleError{reason: reason, message: message}
}

// Reason returns the machine-readable reason code.
func (e *IneligibleError) Reason() IneligibleReason {
	return e.reason
}

// Error implements the error interface
func (e *IneligibleError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *IneligibleError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *IneligibleError) ErrorCode() string {
	return "INELIGIBLE_TO_BORROW"
}

// Message returns the user-friendly error message
func (e *IneligibleError) Message() string {
	return e.message
}

// Details returns the reason code as detail information
func (e *IneligibleError) Details() string {
	return string(e.reason)
}
