package postgres

import (
	"context"

	"circulate/internal/domain/entity"
	"circulate/internal/domain/repository"
	"circulate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffRepository implements the repository.StaffRepository interface using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{
		db: db,
	}
}

// CreateStaff persists a new staff account.
func (repo *staffRepository) CreateStaff(ctx context.Context, staff *entity.Staff) error {
	staffM := fromStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStaffUsername
		}

		return errors.Wrap(err, "failed to create staff account")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// FindStaffByUsername retrieves a staff account by its login name.
func (repo *staffRepository) FindStaffByUsername(ctx context.Context, username string) (*entity.Staff, error) {
	var staffM model.StaffModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by username")
	}

	return toStaffDomain(&staffM), nil
}

// --- Mapper Functions ---

// toStaffDomain converts a GORM StaffModel to a domain Staff entity.
func toStaffDomain(data *model.StaffModel) *entity.Staff {
	if data == nil {
		return nil
	}

	return &entity.Staff{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromStaffDomain converts a domain Staff entity to a GORM StaffModel for persistence.
func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	if data == nil {
		return nil
	}

	return &model.StaffModel{
		ID:           data.ID,
		Username:     data.Username,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
	}
}
