package impl

import (
	"context"
	"testing"

	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/repository"
	mockRepo "circulate/internal/mocks/repository"
	mockSvc "circulate/internal/mocks/service"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	service      usecase.AuthUsecase
	staffRepo    *mockRepo.MockStaffRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authFixtures {
	staffRepo := mockRepo.NewMockStaffRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		StaffRepo:    staffRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authFixtures{
		service:      service,
		staffRepo:    staffRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	staffID := uuid.New()
	staff := &entity.Staff{ID: staffID, Username: "librarian", PasswordHash: "hashed"}

	f.staffRepo.EXPECT().FindStaffByUsername(ctx, "librarian").Return(staff, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	f.tokenService.EXPECT().GenerateAccessToken(staffID).Return("signed-token", nil)

	output, err := f.service.Login(ctx, usecase.StaffLoginInput{Username: "librarian", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, staffID, output.Staff.ID)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.staffRepo.EXPECT().FindStaffByUsername(ctx, "ghost").Return(nil, repository.ErrStaffNotFound)

	output, err := f.service.Login(ctx, usecase.StaffLoginInput{Username: "ghost", Password: "secret"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	staff := &entity.Staff{ID: uuid.New(), Username: "librarian", PasswordHash: "hashed"}

	f.staffRepo.EXPECT().FindStaffByUsername(ctx, "librarian").Return(staff, nil)
	f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := f.service.Login(ctx, usecase.StaffLoginInput{Username: "librarian", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RegisterStaff_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	f.staffRepo.EXPECT().
		CreateStaff(ctx, mock.AnythingOfType("*entity.Staff")).
		Return(nil)

	staff, err := f.service.RegisterStaff(ctx, usecase.RegisterStaffInput{
		Username: "librarian",
		Name:     "Ada",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "librarian", staff.Username)
	assert.Equal(t, "hashed", staff.PasswordHash)
}

func TestAuthService_RegisterStaff_DuplicateUsername(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	f.staffRepo.EXPECT().
		CreateStaff(ctx, mock.AnythingOfType("*entity.Staff")).
		Return(repository.ErrDuplicateStaffUsername)

	staff, err := f.service.RegisterStaff(ctx, usecase.RegisterStaffInput{
		Username: "librarian",
		Name:     "Ada",
		Password: "secret",
	})
	require.Error(t, err)
	assert.Nil(t, staff)
	assert.ErrorIs(t, err, domainerrors.ErrStaffAlreadyExists)
}
