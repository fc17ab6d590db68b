package impl

import (
	"context"
	"testing"

	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/repository"
	mockRepo "circulate/internal/mocks/repository"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryFixtures struct {
	service   usecase.InventoryUsecase
	txManager *mockRepo.MockTransactionManager
	bookRepo  *mockRepo.MockBookRepository
}

func createTestInventoryService(t *testing.T) inventoryFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookRepo := mockRepo.NewMockBookRepository(t)

	service := NewInventoryService(InventoryServiceParams{
		TxManager: txManager,
		BookRepo:  bookRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return inventoryFixtures{service: service, txManager: txManager, bookRepo: bookRepo}
}

func (f inventoryFixtures) expectTransaction(t *testing.T, ctx context.Context, setup func(books *mockRepo.MockBookRepository)) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			books := mockRepo.NewMockBookRepository(t)

			factory.EXPECT().NewBookRepository().Return(books).Maybe()

			setup(books)

			return fn(factory)
		})
}

func TestInventoryService_RegisterBook_Success(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()

	f.bookRepo.EXPECT().
		CreateBook(ctx, mock.AnythingOfType("*entity.Book")).
		Return(nil)

	book, err := f.service.RegisterBook(ctx, usecase.RegisterBookInput{
		ISBN:        "978-0134190440",
		Title:       "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		TotalCopies: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, book.TotalCopies)
	assert.Equal(t, 3, book.AvailableCopies)
	assert.True(t, book.IsActive)
}

func TestInventoryService_RegisterBook_DuplicateISBN(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()

	f.bookRepo.EXPECT().
		CreateBook(ctx, mock.AnythingOfType("*entity.Book")).
		Return(repository.ErrDuplicateISBN)

	book, err := f.service.RegisterBook(ctx, usecase.RegisterBookInput{
		ISBN:        "978-0134190440",
		Title:       "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		TotalCopies: 1,
	})
	require.Error(t, err)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateISBN)
}

func TestInventoryService_RegisterBook_NoCopies(t *testing.T) {
	f := createTestInventoryService(t)

	book, err := f.service.RegisterBook(context.Background(), usecase.RegisterBookInput{
		ISBN:        "978-0134190440",
		Title:       "The Go Programming Language",
		TotalCopies: 0,
	})
	require.Error(t, err)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInventoryService_AdjustTotalCopies_GrowsAvailability(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()
	bookID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository) {
		books.EXPECT().FindBookByIDForUpdate(ctx, bookID).Return(&entity.Book{
			ID: bookID, TotalCopies: 3, AvailableCopies: 1, IsActive: true,
		}, nil)
		books.EXPECT().UpdateCopyCounts(ctx, bookID, 5, 3).Return(nil)
	})

	book, err := f.service.AdjustTotalCopies(ctx, bookID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, book.TotalCopies)
	assert.Equal(t, 3, book.AvailableCopies)
}

func TestInventoryService_AdjustTotalCopies_BelowBorrowedCount(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()
	bookID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository) {
		// Three copies are out on loan; shrinking to two must fail.
		books.EXPECT().FindBookByIDForUpdate(ctx, bookID).Return(&entity.Book{
			ID: bookID, TotalCopies: 4, AvailableCopies: 1, IsActive: true,
		}, nil)
	})

	book, err := f.service.AdjustTotalCopies(ctx, bookID, 2)
	require.Error(t, err)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCopyAdjustment)
}

func TestInventoryService_AdjustTotalCopies_ExactlyBorrowedCount(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()
	bookID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository) {
		books.EXPECT().FindBookByIDForUpdate(ctx, bookID).Return(&entity.Book{
			ID: bookID, TotalCopies: 4, AvailableCopies: 1, IsActive: true,
		}, nil)
		books.EXPECT().UpdateCopyCounts(ctx, bookID, 3, 0).Return(nil)
	})

	book, err := f.service.AdjustTotalCopies(ctx, bookID, 3)
	require.NoError(t, err)
	assert.Zero(t, book.AvailableCopies)
}

func TestInventoryService_AdjustTotalCopies_Zero(t *testing.T) {
	f := createTestInventoryService(t)

	book, err := f.service.AdjustTotalCopies(context.Background(), uuid.New(), 0)
	require.Error(t, err)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCopyAdjustment)
}

func TestInventoryService_SetBookActive_Success(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()
	bookID := uuid.New()

	f.bookRepo.EXPECT().SetActive(ctx, bookID, false).Return(nil)
	f.bookRepo.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{ID: bookID, IsActive: false}, nil)

	book, err := f.service.SetBookActive(ctx, bookID, false)
	require.NoError(t, err)
	assert.False(t, book.IsActive)
}

func TestInventoryService_GetBook_NotFound(t *testing.T) {
	f := createTestInventoryService(t)

	ctx := context.Background()
	bookID := uuid.New()

	f.bookRepo.EXPECT().FindBookByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	book, err := f.service.GetBook(ctx, bookID)
	require.Error(t, err)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}
