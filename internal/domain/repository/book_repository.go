// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"circulate/internal/domain/entity"
	"circulate/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for book persistence.
var (
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when registering a book whose ISBN already exists.
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")
	// ErrNoCopiesAvailable is returned by ReserveCopy when no copy is on the shelf.
	ErrNoCopiesAvailable = errors.New("no copies available")
	// ErrCopyCountConflict is returned when a copy-count update would break the
	// 0 <= available <= total invariant.
	ErrCopyCountConflict = errors.New("copy count update conflicts with ledger invariant")
)

// BookRepository defines book catalog and inventory-ledger operations.
// ReserveCopy and ReleaseCopy are the only paths that move AvailableCopies
// during circulation; both are conditional single-statement updates so that
// concurrent callers can never drive the counter out of range.
type BookRepository interface {
	// CreateBook persists a new catalog entry.
	CreateBook(ctx context.Context, book *entity.Book) error

	// FindBookByID retrieves a book by its unique ID.
	FindBookByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindBookByISBN retrieves a book by its ISBN.
	FindBookByISBN(ctx context.Context, isbn string) (*entity.Book, error)

	// FindBookByIDForUpdate retrieves a book and row-locks it for the span of
	// the current transaction. Used by total-copy adjustments.
	FindBookByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// ReserveCopy atomically decrements the available-copy counter of an
	// active book. Returns ErrNoCopiesAvailable when the counter is zero,
	// or the book is inactive; two concurrent reservations of a last copy
	// yield exactly one success.
	ReserveCopy(ctx context.Context, id uuid.UUID) error

	// ReleaseCopy atomically increments the available-copy counter. Returns
	// ErrCopyCountConflict if the increment would exceed TotalCopies, which
	// indicates a release without a matching reservation.
	ReleaseCopy(ctx context.Context, id uuid.UUID) error

	// UpdateCopyCounts sets both counters, after the caller has validated the
	// ledger invariant under a row lock.
	UpdateCopyCounts(ctx context.Context, id uuid.UUID, totalCopies, availableCopies int) error

	// RemoveLostCopy atomically decrements TotalCopies for a copy written off
	// while out on loan. Returns ErrCopyCountConflict if no copy is out.
	RemoveLostCopy(ctx context.Context, id uuid.UUID) error

	// SetActive activates or deactivates a book for borrowing.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
