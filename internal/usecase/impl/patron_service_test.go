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

type patronFixtures struct {
	service    usecase.PatronUsecase
	patronRepo *mockRepo.MockPatronRepository
}

func createTestPatronService(t *testing.T) patronFixtures {
	patronRepo := mockRepo.NewMockPatronRepository(t)

	service := NewPatronService(PatronServiceParams{
		PatronRepo: patronRepo,
		Logger:     newDiscardLogger(),
	})

	return patronFixtures{
		service:    service,
		patronRepo: patronRepo,
	}
}

func TestPatronService_RegisterPatron_Success(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()

	f.patronRepo.EXPECT().
		CreatePatron(ctx, mock.AnythingOfType("*entity.Patron")).
		Return(nil)

	patron, err := f.service.RegisterPatron(ctx, usecase.RegisterPatronInput{
		Name:  "Grace",
		Email: "grace@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace", patron.Name)
	assert.Equal(t, "grace@example.com", patron.Email)
	assert.NotEqual(t, uuid.Nil, patron.ID)
	assert.Zero(t, patron.OutstandingFineTotal)
}

func TestPatronService_RegisterPatron_DuplicateEmail(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()

	f.patronRepo.EXPECT().
		CreatePatron(ctx, mock.AnythingOfType("*entity.Patron")).
		Return(repository.ErrDuplicatePatronEmail)

	patron, err := f.service.RegisterPatron(ctx, usecase.RegisterPatronInput{
		Name:  "Grace",
		Email: "grace@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, patron)
	assert.ErrorIs(t, err, domainerrors.ErrPatronAlreadyExists)
}

func TestPatronService_GetPatron_Success(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()
	patronID := uuid.New()
	stored := &entity.Patron{ID: patronID, Name: "Grace", Email: "grace@example.com"}

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(stored, nil)

	patron, err := f.service.GetPatron(ctx, patronID)
	require.NoError(t, err)
	assert.Equal(t, stored, patron)
}

func TestPatronService_GetPatron_NotFound(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(nil, repository.ErrPatronNotFound)

	patron, err := f.service.GetPatron(ctx, patronID)
	require.Error(t, err)
	assert.Nil(t, patron)
	assert.ErrorIs(t, err, domainerrors.ErrPatronNotFound)
}

func TestPatronService_SetNotificationToken_Success(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().UpdateNotificationToken(ctx, patronID, "fcm-token").Return(nil)

	err := f.service.SetNotificationToken(ctx, patronID, "fcm-token")
	require.NoError(t, err)
}

func TestPatronService_SetNotificationToken_ClearsToken(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().UpdateNotificationToken(ctx, patronID, "").Return(nil)

	err := f.service.SetNotificationToken(ctx, patronID, "")
	require.NoError(t, err)
}

func TestPatronService_SetNotificationToken_UnknownPatron(t *testing.T) {
	f := createTestPatronService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().
		UpdateNotificationToken(ctx, patronID, "fcm-token").
		Return(repository.ErrPatronNotFound)

	err := f.service.SetNotificationToken(ctx, patronID, "fcm-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPatronNotFound)
}
