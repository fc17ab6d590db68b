package impl

import (
	"context"
	"log/slog"

	"circulate/config"
	deliverycontext "circulate/internal/delivery/context"
	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/repository"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	logger    *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		logger:    params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBook adds a new title to the catalog. All copies start available.
func (srv *inventoryService) RegisterBook(ctx context.Context, input usecase.RegisterBookInput) (*entity.Book, error) {
	if input.TotalCopies < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a book needs at least one copy")
	}

	book := &entity.Book{
		ID:              uuid.New(),
		ISBN:            input.ISBN,
		Title:           input.Title,
		Author:          input.Author,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.TotalCopies,
		IsActive:        true,
	}

	// The unique index on ISBN is the real guard; CreateBook surfaces the
	// conflict for concurrent registrations of the same title.
	if err := srv.bookRepo.CreateBook(ctx, book); err != nil {
		if errors.Is(err, repository.ErrDuplicateISBN) {
			return nil, domainerrors.ErrDuplicateISBN.WrapMessage("failed to register book")
		}

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book registered",
		slog.Any("bookID", book.ID), slog.String("isbn", book.ISBN), slog.Int("copies", book.TotalCopies))

	return book, nil
}

// AdjustTotalCopies changes a book's total copy count while keeping the
// ledger invariant. The book row stays locked for the whole adjustment so a
// concurrent checkout cannot slip between the read and the write.
func (srv *inventoryService) AdjustTotalCopies(ctx context.Context, bookID uuid.UUID, newTotal int) (*entity.Book, error) {
	if newTotal < 1 {
		return nil, domainerrors.ErrInvalidCopyAdjustment.WrapMessage("total copies must be at least one")
	}

	var adjusted *entity.Book
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		book, err := bookRepo.FindBookByIDForUpdate(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound.WrapMessage("failed to adjust copies")
			}

			return errors.Wrap(err, "failed to find book by id")
		}

		newAvailable := newTotal - book.BorrowedCopies()
		if newAvailable < 0 {
			return domainerrors.ErrInvalidCopyAdjustment.WrapMessage("failed to adjust copies")
		}

		if err := bookRepo.UpdateCopyCounts(ctx, bookID, newTotal, newAvailable); err != nil {
			return errors.Wrap(err, "failed to update copy counts")
		}

		book.TotalCopies = newTotal
		book.AvailableCopies = newAvailable
		adjusted = book

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to adjust total copies",
			slog.Any("bookID", bookID), slog.Int("newTotal", newTotal), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute copy adjustment transaction")
	}

	srv.log(ctx).Info("Total copies adjusted",
		slog.Any("bookID", adjusted.ID),
		slog.Int("totalCopies", adjusted.TotalCopies),
		slog.Int("availableCopies", adjusted.AvailableCopies))

	return adjusted, nil
}

// SetBookActive enables or disables a book for new checkouts. Open loans on
// a deactivated book keep their normal return flow.
func (srv *inventoryService) SetBookActive(ctx context.Context, bookID uuid.UUID, active bool) (*entity.Book, error) {
	if err := srv.bookRepo.SetActive(ctx, bookID, active); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("failed to set book active state")
		}

		return nil, errors.Wrap(err, "failed to set book active state")
	}

	srv.log(ctx).Info("Book active state changed", slog.Any("bookID", bookID), slog.Bool("active", active))

	return srv.GetBook(ctx, bookID)
}

// GetBook retrieves a book by ID.
func (srv *inventoryService) GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound.WrapMessage("failed to get book")
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return book, nil
}
