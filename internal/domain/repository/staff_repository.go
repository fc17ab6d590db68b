package repository

import (
	"context"

	"circulate/internal/domain/entity"
	"circulate/internal/errors"
)

var (
	// ErrStaffNotFound is returned when a staff account is not found.
	ErrStaffNotFound = errors.New("staff account not found")
	// ErrDuplicateStaffUsername is returned when a staff username is taken.
	ErrDuplicateStaffUsername = errors.New("staff username already exists")
)

// StaffRepository defines librarian-account database operations.
type StaffRepository interface {
	// CreateStaff persists a new staff account.
	CreateStaff(ctx context.Context, staff *entity.Staff) error

	// FindStaffByUsername retrieves a staff account by its login name.
	FindStaffByUsername(ctx context.Context, username string) (*entity.Staff, error)
}
