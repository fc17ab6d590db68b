package impl

import (
	"context"
	"log/slog"

	deliverycontext "circulate/internal/delivery/context"
	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/repository"
	"circulate/internal/domain/service"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	staffRepo    repository.StaffRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	StaffRepo    repository.StaffRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		staffRepo:    params.StaffRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a staff member and issues an access token. Unknown
// usernames and wrong passwords yield the same error.
func (srv *authService) Login(ctx context.Context, input usecase.StaffLoginInput) (*usecase.StaffLoginOutput, error) {
	staff, err := srv.staffRepo.FindStaffByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find staff by username")
	}

	if !srv.hasher.Check(input.Password, staff.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(staff.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Staff logged in", slog.Any("staffID", staff.ID))

	return &usecase.StaffLoginOutput{
		AccessToken: accessToken,
		Staff:       staff,
	}, nil
}

// RegisterStaff creates a new staff account with a hashed password.
func (srv *authService) RegisterStaff(ctx context.Context, input usecase.RegisterStaffInput) (*entity.Staff, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	staff := &entity.Staff{
		ID:           uuid.New(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	if err := srv.staffRepo.CreateStaff(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicateStaffUsername) {
			return nil, domainerrors.ErrStaffAlreadyExists.WrapMessage("failed to register staff")
		}

		return nil, errors.Wrap(err, "failed to create staff account")
	}

	srv.log(ctx).Info("Staff account created", slog.Any("staffID", staff.ID), slog.String("username", staff.Username))

	return staff, nil
}
