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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCirculationService_CreateLoan_IneligiblePatron(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	patronID := uuid.New()
	bookID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		patrons.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
		loans.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return([]*entity.Loan{
			{ID: uuid.New(), BookID: bookID, Status: entity.LoanActive, DueAt: time.Now().Add(24 * time.Hour)},
		}, nil)
	})

	loan, err := f.service.CreateLoan(ctx, usecase.CreateLoanInput{PatronID: patronID, BookID: bookID, IssuedBy: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, loan)

	var ineligible *domainerrors.IneligibleError
	require.ErrorAs(t, err, &ineligible)
	assert.Equal(t, domainerrors.ReasonDuplicateActiveLoan, ineligible.Reason())
}

func TestCirculationService_CreateLoan_ReservationRace(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	patronID := uuid.New()
	bookID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		patrons.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
		loans.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return(nil, nil)
		loans.EXPECT().HasUnpaidFines(ctx, patronID).Return(false, nil)
		books.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{
			ID: bookID, TotalCopies: 1, AvailableCopies: 1, IsActive: true,
		}, nil)
		// A concurrent checkout won the last copy between the read and the
		// conditional decrement.
		books.EXPECT().ReserveCopy(ctx, bookID).Return(repository.ErrNoCopiesAvailable)
	})

	loan, err := f.service.CreateLoan(ctx, usecase.CreateLoanInput{PatronID: patronID, BookID: bookID, IssuedBy: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, loan)
	assert.ErrorIs(t, err, domainerrors.ErrNoCopiesAvailable)
}

func TestCirculationService_CreateLoan_TransactionFailure(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	loan, err := f.service.CreateLoan(ctx, usecase.CreateLoanInput{PatronID: uuid.New(), BookID: uuid.New(), IssuedBy: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, loan)
}

func TestCirculationService_ReturnLoan_AlreadyReturned(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	returnedAt := time.Now().Add(-time.Hour)

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:         loanID,
			Status:     entity.LoanReturned,
			ReturnedAt: &returnedAt,
		}, nil)
	})

	output, err := f.service.ReturnLoan(ctx, usecase.ReturnLoanInput{LoanID: loanID, ReturnedBy: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReturned)
}

func TestCirculationService_ReturnLoan_NotFound(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(nil, repository.ErrLoanNotFound)
	})

	output, err := f.service.ReturnLoan(ctx, usecase.ReturnLoanInput{LoanID: loanID, ReturnedBy: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrLoanNotFound)
}

func TestCirculationService_RenewLoan_ChecksRunInOrder(t *testing.T) {
	patronID := uuid.New()
	otherPatron := uuid.New()

	tests := []struct {
		name      string
		loan      func(loanID uuid.UUID) *entity.Loan
		patronID  *uuid.UUID
		hasUnpaid bool
		wantErr   error
	}{
		{
			name: "wrong patron",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanActive, DueAt: time.Now().Add(24 * time.Hour)}
			},
			patronID: &otherPatron,
			wantErr:  domainerrors.ErrNotAuthorized,
		},
		{
			name: "already returned",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanReturned}
			},
			wantErr: domainerrors.ErrAlreadyReturned,
		},
		{
			name: "lost",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanLost}
			},
			wantErr: domainerrors.ErrLoanNotOpen,
		},
		{
			name: "swept overdue",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanOverdue, DueAt: time.Now().Add(-24 * time.Hour)}
			},
			wantErr: domainerrors.ErrCannotRenewOverdue,
		},
		{
			name: "past due but not yet swept",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanActive, DueAt: time.Now().Add(-time.Minute)}
			},
			wantErr: domainerrors.ErrCannotRenewOverdue,
		},
		{
			name: "renewal limit reached",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanActive, DueAt: time.Now().Add(24 * time.Hour), RenewalCount: 2}
			},
			wantErr: domainerrors.ErrMaxRenewalsReached,
		},
		{
			name: "unpaid fine elsewhere",
			loan: func(loanID uuid.UUID) *entity.Loan {
				return &entity.Loan{ID: loanID, PatronID: patronID, Status: entity.LoanActive, DueAt: time.Now().Add(24 * time.Hour)}
			},
			hasUnpaid: true,
			wantErr:   domainerrors.ErrRenewalBlockedByFine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCirculationService(t)

			ctx := context.Background()
			loanID := uuid.New()

			f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
				loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(tt.loan(loanID), nil)
				if errors.Is(tt.wantErr, domainerrors.ErrRenewalBlockedByFine) {
					loans.EXPECT().HasUnpaidFines(ctx, patronID).Return(tt.hasUnpaid, nil)
				}
			})

			loan, err := f.service.RenewLoan(ctx, usecase.RenewLoanInput{
				LoanID:    loanID,
				RenewedBy: uuid.New(),
				PatronID:  tt.patronID,
			})
			require.Error(t, err)
			assert.Nil(t, loan)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCirculationService_PayFine_Overpayment(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:     loanID,
			Status: entity.LoanReturned,
			Fine:   entity.Fine{Amount: 10, PaidAmount: 7},
		}, nil)
	})

	loan, err := f.service.PayFine(ctx, usecase.PayFineInput{LoanID: loanID, Amount: 4})
	require.Error(t, err)
	assert.Nil(t, loan)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentExceedsOwed)
}

func TestCirculationService_PayFine_NonPositiveAmount(t *testing.T) {
	f := createTestCirculationService(t)

	loan, err := f.service.PayFine(context.Background(), usecase.PayFineInput{LoanID: uuid.New(), Amount: 0})
	require.Error(t, err)
	assert.Nil(t, loan)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCirculationService_SweepOverdue_PublishFailureDoesNotFailSweep(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	now := time.Now()
	bookID := uuid.New()
	patronID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindDueLoansForUpdate(ctx, now).Return([]*entity.Loan{
			{
				ID:       uuid.New(),
				BookID:   bookID,
				PatronID: patronID,
				DueAt:    now.Add(-24 * time.Hour),
				Status:   entity.LoanActive,
			},
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		books.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{ID: bookID, Title: "Clean Architecture"}, nil)
		patrons.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
	})

	f.eventPublisher.EXPECT().
		PublishOverdueNotice(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	output, err := f.service.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, output.NewlyOverdue)
}

func TestCirculationService_GetLoan_NotFound(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()

	f.loanRepo.EXPECT().FindLoanByID(ctx, loanID).Return(nil, repository.ErrLoanNotFound)

	loan, err := f.service.GetLoan(ctx, loanID)
	require.Error(t, err)
	assert.Nil(t, loan)
	assert.ErrorIs(t, err, domainerrors.ErrLoanNotFound)
}

func TestCirculationService_ResolveLoanReceipt_InvalidData(t *testing.T) {
	f := createTestCirculationService(t)

	f.receiptService.EXPECT().ParseLoanReceipt("garbage").Return(uuid.Nil, errors.New("not a receipt"))

	loan, err := f.service.ResolveLoanReceipt(context.Background(), "garbage")
	require.Error(t, err)
	assert.Nil(t, loan)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
