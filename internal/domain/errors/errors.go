package errors

import (
	"net/http"

	"circulate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors
	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"Book not found",
		"",
	)

	ErrPatronNotFound = NewBaseError(
		http.StatusNotFound,
		"PATRON_NOT_FOUND",
		"Patron not found",
		"",
	)

	ErrLoanNotFound = NewBaseError(
		http.StatusNotFound,
		"LOAN_NOT_FOUND",
		"Loan not found",
		"",
	)

	// Inventory errors
	ErrNoCopiesAvailable = NewBaseError(
		http.StatusConflict,
		"NO_COPIES_AVAILABLE",
		"No copies of this book are available",
		"",
	)

	ErrInvalidCopyAdjustment = NewBaseError(
		http.StatusConflict,
		"INVALID_COPY_ADJUSTMENT",
		"New total is below the number of copies currently lent out",
		"",
	)

	ErrDuplicateISBN = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ISBN",
		"A book with this ISBN is already registered",
		"",
	)

	ErrPatronAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PATRON_ALREADY_EXISTS",
		"A patron with this email is already registered",
		"",
	)

	// Loan lifecycle errors
	ErrAlreadyReturned = NewBaseError(
		http.StatusConflict,
		"LOAN_ALREADY_RETURNED",
		"This loan has already been returned",
		"",
	)

	ErrLoanNotOpen = NewBaseError(
		http.StatusConflict,
		"LOAN_NOT_OPEN",
		"This loan is no longer open",
		"",
	)

	ErrMaxRenewalsReached = NewBaseError(
		http.StatusConflict,
		"MAX_RENEWALS_REACHED",
		"This loan has reached its renewal limit",
		"",
	)

	ErrCannotRenewOverdue = NewBaseError(
		http.StatusConflict,
		"CANNOT_RENEW_OVERDUE",
		"An overdue loan cannot be renewed; return it or settle the fine first",
		"",
	)

	ErrRenewalBlockedByFine = NewBaseError(
		http.StatusConflict,
		"RENEWAL_BLOCKED_UNPAID_FINE",
		"Renewal is blocked while the patron has unpaid fines",
		"",
	)

	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"This loan belongs to a different patron",
		"",
	)

	// Fine errors
	ErrPaymentExceedsOwed = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_EXCEEDS_OWED",
		"Payment exceeds the outstanding fine amount",
		"",
	)

	// Authentication errors
	ErrStaffAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STAFF_ALREADY_EXISTS",
		"A staff account with this username already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
