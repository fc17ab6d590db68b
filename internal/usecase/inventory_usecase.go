package usecase

import (
	"context"

	"circulate/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterBookInput defines the data required to add a title to the catalog.
type RegisterBookInput struct {
	ISBN        string
	Title       string
	Author      string
	TotalCopies int
}

// InventoryUsecase defines the interface for catalog and copy management.
type InventoryUsecase interface {
	// RegisterBook adds a new title with an initial copy count. All copies
	// start available.
	RegisterBook(ctx context.Context, input RegisterBookInput) (*entity.Book, error)

	// AdjustTotalCopies changes a book's total copy count. The adjustment
	// is rejected when it would leave fewer copies than are currently
	// borrowed.
	AdjustTotalCopies(ctx context.Context, bookID uuid.UUID, newTotal int) (*entity.Book, error)

	// SetBookActive enables or disables a book for new checkouts. Existing
	// loans are unaffected.
	SetBookActive(ctx context.Context, bookID uuid.UUID, active bool) (*entity.Book, error)

	// GetBook retrieves a book by ID.
	GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error)
}
