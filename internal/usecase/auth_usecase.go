package usecase

import (
	"context"

	"circulate/internal/domain/entity"
)

// StaffLoginInput defines the credentials for a staff login.
type StaffLoginInput struct {
	Username string
	Password string
}

// StaffLoginOutput returns the generated token after a successful login.
type StaffLoginOutput struct {
	AccessToken string
	Staff       *entity.Staff
}

// RegisterStaffInput defines the data required to create a staff account.
type RegisterStaffInput struct {
	Username string
	Name     string
	Password string
}

// AuthUsecase defines the interface for staff authentication.
type AuthUsecase interface {
	Login(ctx context.Context, input StaffLoginInput) (*StaffLoginOutput, error)
	RegisterStaff(ctx context.Context, input RegisterStaffInput) (*entity.Staff, error)
}
