package postgres

import (
	"context"

	"circulate/internal/domain/entity"
	"circulate/internal/domain/repository"
	"circulate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patronRepository implements the repository.PatronRepository interface using GORM.
type patronRepository struct {
	db *gorm.DB
}

// NewPatronRepository is the constructor for patronRepository.
func NewPatronRepository(db *gorm.DB) repository.PatronRepository {
	return &patronRepository{
		db: db,
	}
}

// CreatePatron persists a new borrower.
func (repo *patronRepository) CreatePatron(ctx context.Context, patron *entity.Patron) error {
	patronM := fromPatronDomain(patron)

	if err := repo.db.WithContext(ctx).Create(patronM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePatronEmail
		}

		return errors.Wrap(err, "failed to create patron")
	}

	patron.ID = patronM.ID
	patron.CreatedAt = patronM.CreatedAt
	patron.UpdatedAt = patronM.UpdatedAt

	return nil
}

// FindPatronByID retrieves a patron by their unique ID.
func (repo *patronRepository) FindPatronByID(ctx context.Context, id uuid.UUID) (*entity.Patron, error) {
	var patronM model.PatronModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patronM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatronNotFound
		}

		return nil, errors.Wrap(err, "failed to find patron by ID")
	}

	return toPatronDomain(&patronM), nil
}

// UpdateNotificationToken replaces the patron's push token. An empty token
// clears it.
func (repo *patronRepository) UpdateNotificationToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatronModel{}).
		Where("id = ?", id).
		Update("notification_token", token)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatronNotFound
	}

	return nil
}

// AddToOutstandingFines adjusts the patron's outstanding-fine aggregate by
// delta. The aggregate is clamped at zero so a payment can never drive it
// negative.
func (repo *patronRepository) AddToOutstandingFines(ctx context.Context, id uuid.UUID, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatronModel{}).
		Where("id = ?", id).
		Update("outstanding_fine_total", gorm.Expr("GREATEST(outstanding_fine_total + ?, 0)", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust outstanding fines")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatronNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPatronDomain converts a GORM PatronModel to a domain Patron entity.
func toPatronDomain(data *model.PatronModel) *entity.Patron {
	if data == nil {
		return nil
	}

	return &entity.Patron{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		NotificationToken:    data.NotificationToken,
		OutstandingFineTotal: data.OutstandingFineTotal,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromPatronDomain converts a domain Patron entity to a GORM PatronModel for persistence.
func fromPatronDomain(data *entity.Patron) *model.PatronModel {
	if data == nil {
		return nil
	}

	return &model.PatronModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		NotificationToken:    data.NotificationToken,
		OutstandingFineTotal: data.OutstandingFineTotal,
	}
}
