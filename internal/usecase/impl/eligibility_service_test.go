package impl

import (
	"context"
	"testing"
	"time"

	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/repository"
	mockRepo "circulate/internal/mocks/repository"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eligibilityFixtures struct {
	service    usecase.EligibilityUsecase
	bookRepo   *mockRepo.MockBookRepository
	patronRepo *mockRepo.MockPatronRepository
	loanRepo   *mockRepo.MockLoanRepository
}

func createTestEligibilityService(t *testing.T) eligibilityFixtures {
	bookRepo := mockRepo.NewMockBookRepository(t)
	patronRepo := mockRepo.NewMockPatronRepository(t)
	loanRepo := mockRepo.NewMockLoanRepository(t)

	service := NewEligibilityService(EligibilityServiceParams{
		BookRepo:   bookRepo,
		PatronRepo: patronRepo,
		LoanRepo:   loanRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return eligibilityFixtures{
		service:    service,
		bookRepo:   bookRepo,
		patronRepo: patronRepo,
		loanRepo:   loanRepo,
	}
}

func openLoan(bookID uuid.UUID, dueIn time.Duration) *entity.Loan {
	return &entity.Loan{
		ID:     uuid.New(),
		BookID: bookID,
		DueAt:  time.Now().Add(dueIn),
		Status: entity.LoanActive,
	}
}

func TestEligibilityService_CheckEligibility_Eligible(t *testing.T) {
	f := createTestEligibilityService(t)

	ctx := context.Background()
	patronID := uuid.New()
	bookID := uuid.New()

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
	f.loanRepo.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return([]*entity.Loan{
		openLoan(uuid.New(), 48*time.Hour),
	}, nil)
	f.loanRepo.EXPECT().HasUnpaidFines(ctx, patronID).Return(false, nil)
	f.bookRepo.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{
		ID: bookID, TotalCopies: 2, AvailableCopies: 1, IsActive: true,
	}, nil)

	output, err := f.service.CheckEligibility(ctx, patronID, bookID)
	require.NoError(t, err)
	assert.True(t, output.Eligible)
	assert.Empty(t, output.Reason)
}

// The gatekeeper applies its rules in a fixed order and reports only the
// first failure, even when several rules would fail at once.
func TestEligibilityService_CheckEligibility_FirstFailingReasonWins(t *testing.T) {
	bookID := uuid.New()

	tests := []struct {
		name       string
		openLoans  func() []*entity.Loan
		hasUnpaid  bool
		book       *entity.Book
		wantReason domainerrors.IneligibleReason
	}{
		{
			name: "duplicate beats limit and overdue",
			openLoans: func() []*entity.Loan {
				loans := []*entity.Loan{openLoan(bookID, -48 * time.Hour)}
				for i := 0; i < 4; i++ {
					loans = append(loans, openLoan(uuid.New(), -24*time.Hour))
				}
				return loans
			},
			hasUnpaid:  true,
			wantReason: domainerrors.ReasonDuplicateActiveLoan,
		},
		{
			name: "limit beats overdue",
			openLoans: func() []*entity.Loan {
				loans := make([]*entity.Loan, 0, 5)
				for i := 0; i < 5; i++ {
					loans = append(loans, openLoan(uuid.New(), -24*time.Hour))
				}
				return loans
			},
			hasUnpaid:  true,
			wantReason: domainerrors.ReasonBorrowLimitReached,
		},
		{
			name: "overdue beats unpaid fine",
			openLoans: func() []*entity.Loan {
				// Past due but never swept still counts as overdue.
				return []*entity.Loan{openLoan(uuid.New(), -time.Minute)}
			},
			hasUnpaid:  true,
			wantReason: domainerrors.ReasonHasOverdueLoan,
		},
		{
			name:       "unpaid fine beats inactive book",
			openLoans:  func() []*entity.Loan { return nil },
			hasUnpaid:  true,
			book:       &entity.Book{ID: bookID, TotalCopies: 1, AvailableCopies: 0, IsActive: false},
			wantReason: domainerrors.ReasonHasUnpaidFine,
		},
		{
			name:       "inactive book beats empty shelf",
			openLoans:  func() []*entity.Loan { return nil },
			book:       &entity.Book{ID: bookID, TotalCopies: 1, AvailableCopies: 0, IsActive: false},
			wantReason: domainerrors.ReasonBookInactive,
		},
		{
			name:       "no copies available",
			openLoans:  func() []*entity.Loan { return nil },
			book:       &entity.Book{ID: bookID, TotalCopies: 2, AvailableCopies: 0, IsActive: true},
			wantReason: domainerrors.ReasonNoCopiesAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestEligibilityService(t)

			ctx := context.Background()
			patronID := uuid.New()

			f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
			f.loanRepo.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return(tt.openLoans(), nil)
			if tt.wantReason != domainerrors.ReasonDuplicateActiveLoan &&
				tt.wantReason != domainerrors.ReasonBorrowLimitReached &&
				tt.wantReason != domainerrors.ReasonHasOverdueLoan {
				f.loanRepo.EXPECT().HasUnpaidFines(ctx, patronID).Return(tt.hasUnpaid, nil)
			}
			if tt.book != nil && tt.wantReason != domainerrors.ReasonHasUnpaidFine {
				f.bookRepo.EXPECT().FindBookByID(ctx, bookID).Return(tt.book, nil)
			}

			output, err := f.service.CheckEligibility(ctx, patronID, bookID)
			require.NoError(t, err)
			assert.False(t, output.Eligible)
			assert.Equal(t, tt.wantReason, output.Reason)
			assert.NotEmpty(t, output.Message)
		})
	}
}

func TestEligibilityService_CheckEligibility_PatronNotFound(t *testing.T) {
	f := createTestEligibilityService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(nil, repository.ErrPatronNotFound)

	output, err := f.service.CheckEligibility(ctx, patronID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPatronNotFound)
}

func TestEligibilityService_CheckEligibility_BookNotFound(t *testing.T) {
	f := createTestEligibilityService(t)

	ctx := context.Background()
	patronID := uuid.New()
	bookID := uuid.New()

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
	f.loanRepo.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return(nil, nil)
	f.loanRepo.EXPECT().HasUnpaidFines(ctx, patronID).Return(false, nil)
	f.bookRepo.EXPECT().FindBookByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	output, err := f.service.CheckEligibility(ctx, patronID, bookID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestEligibilityService_CheckEligibility_RepositoryFailure(t *testing.T) {
	f := createTestEligibilityService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
	f.loanRepo.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return(nil, errors.New("connection reset"))

	output, err := f.service.CheckEligibility(ctx, patronID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, output)
}
