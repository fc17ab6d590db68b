package postgres

import (
	"context"

	"circulate/internal/domain/entity"
	"circulate/internal/domain/repository"
	"circulate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// CreateBook persists a new catalog entry.
func (repo *bookRepository) CreateBook(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateISBN
		}

		return errors.Wrap(err, "failed to create book")
	}

	// Update the entity with generated values
	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindBookByID retrieves a book by its unique ID.
func (repo *bookRepository) FindBookByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ID")
	}

	return toBookDomain(&bookM), nil
}

// FindBookByISBN retrieves a book by its ISBN.
func (repo *bookRepository) FindBookByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("isbn = ?", isbn).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ISBN")
	}

	return toBookDomain(&bookM), nil
}

// FindBookByIDForUpdate retrieves a book under a FOR UPDATE row lock.
// The lock is held until the enclosing transaction commits or rolls back.
func (repo *bookRepository) FindBookByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ID for update")
	}

	return toBookDomain(&bookM), nil
}

// ReserveCopy takes one copy off the shelf. The decrement is guarded in the
// WHERE clause, so two concurrent reservations of a last copy resolve to
// exactly one affected row.
func (repo *bookRepository) ReserveCopy(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND is_active = ? AND available_copies > 0", id, true).
		Update("available_copies", gorm.Expr("available_copies - 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reserve copy")
	}

	if result.RowsAffected == 0 {
		return repo.classifyReserveFailure(ctx, id)
	}

	return nil
}

// classifyReserveFailure distinguishes a missing book from an exhausted or
// inactive one after a zero-row conditional update.
func (repo *bookRepository) classifyReserveFailure(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check book existence")
	}

	if count == 0 {
		return repository.ErrBookNotFound
	}

	return repository.ErrNoCopiesAvailable
}

// ReleaseCopy puts one copy back on the shelf. The guard keeps the counter
// from ever exceeding TotalCopies.
func (repo *bookRepository) ReleaseCopy(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND available_copies < total_copies", id).
		Update("available_copies", gorm.Expr("available_copies + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release copy")
	}

	if result.RowsAffected == 0 {
		return repo.classifyCountFailure(ctx, id)
	}

	return nil
}

// RemoveLostCopy writes a copy off the inventory while it is out on loan.
// The guard requires at least one borrowed copy to exist.
func (repo *bookRepository) RemoveLostCopy(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND total_copies > available_copies", id).
		Update("total_copies", gorm.Expr("total_copies - 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove lost copy")
	}

	if result.RowsAffected == 0 {
		return repo.classifyCountFailure(ctx, id)
	}

	return nil
}

func (repo *bookRepository) classifyCountFailure(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check book existence")
	}

	if count == 0 {
		return repository.ErrBookNotFound
	}

	return repository.ErrCopyCountConflict
}

// UpdateCopyCounts sets both counters. The caller validates the ledger
// invariant under a row lock before calling.
func (repo *bookRepository) UpdateCopyCounts(ctx context.Context, id uuid.UUID, totalCopies, availableCopies int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_copies":     totalCopies,
			"available_copies": availableCopies,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update copy counts")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// SetActive activates or deactivates a book for borrowing.
func (repo *bookRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set book active state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:              data.ID,
		ISBN:            data.ISBN,
		Title:           data.Title,
		Author:          data.Author,
		TotalCopies:     data.TotalCopies,
		AvailableCopies: data.AvailableCopies,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:              data.ID,
		ISBN:            data.ISBN,
		Title:           data.Title,
		Author:          data.Author,
		TotalCopies:     data.TotalCopies,
		AvailableCopies: data.AvailableCopies,
		IsActive:        data.IsActive,
	}
}
