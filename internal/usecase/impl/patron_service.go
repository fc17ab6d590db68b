package impl

import (
	"context"
	"log/slog"

	deliverycontext "circulate/internal/delivery/context"
	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/repository"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// patronService implements the PatronUsecase interface.
type patronService struct {
	patronRepo repository.PatronRepository
	logger     *slog.Logger
}

// PatronServiceParams holds dependencies for PatronService, injected by Fx.
type PatronServiceParams struct {
	fx.In

	PatronRepo repository.PatronRepository
	Logger     *slog.Logger
}

// NewPatronService creates a new patron membership service instance
func NewPatronService(params PatronServiceParams) usecase.PatronUsecase {
	return &patronService{
		patronRepo: params.PatronRepo,
		logger:     params.Logger,
	}
}

func (srv *patronService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPatron creates a new borrower account.
func (srv *patronService) RegisterPatron(ctx context.Context, input usecase.RegisterPatronInput) (*entity.Patron, error) {
	patron := &entity.Patron{
		ID:                uuid.New(),
		Name:              input.Name,
		Email:             input.Email,
		NotificationToken: input.NotificationToken,
	}

	// The unique index on email is the real guard against concurrent
	// registrations of the same address.
	if err := srv.patronRepo.CreatePatron(ctx, patron); err != nil {
		if errors.Is(err, repository.ErrDuplicatePatronEmail) {
			return nil, domainerrors.ErrPatronAlreadyExists.WrapMessage("failed to register patron")
		}

		return nil, errors.Wrap(err, "failed to create patron")
	}

	srv.log(ctx).Info("Patron registered", slog.Any("patronID", patron.ID))

	return patron, nil
}

// GetPatron retrieves a patron by ID.
func (srv *patronService) GetPatron(ctx context.Context, patronID uuid.UUID) (*entity.Patron, error) {
	patron, err := srv.patronRepo.FindPatronByID(ctx, patronID)
	if err != nil {
		if errors.Is(err, repository.ErrPatronNotFound) {
			return nil, domainerrors.ErrPatronNotFound.WrapMessage("failed to get patron")
		}

		return nil, errors.Wrap(err, "failed to find patron by id")
	}

	return patron, nil
}

// SetNotificationToken replaces the patron's push token.
func (srv *patronService) SetNotificationToken(ctx context.Context, patronID uuid.UUID, token string) error {
	if err := srv.patronRepo.UpdateNotificationToken(ctx, patronID, token); err != nil {
		if errors.Is(err, repository.ErrPatronNotFound) {
			return domainerrors.ErrPatronNotFound.WrapMessage("failed to set notification token")
		}

		return errors.Wrap(err, "failed to update notification token")
	}

	srv.log(ctx).Info("Notification token updated",
		slog.Any("patronID", patronID), slog.Bool("cleared", token == ""))

	return nil
}
