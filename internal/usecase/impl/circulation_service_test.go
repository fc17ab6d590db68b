package impl

import (
	"context"
	"testing"
	"time"

	"circulate/internal/domain/entity"
	"circulate/internal/domain/service"
	mockRepo "circulate/internal/mocks/repository"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCirculationService_CreateLoan_Success(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	patronID := uuid.New()
	bookID := uuid.New()
	staffID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		patrons.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
		loans.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return(nil, nil)
		loans.EXPECT().HasUnpaidFines(ctx, patronID).Return(false, nil)
		books.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{
			ID:              bookID,
			TotalCopies:     3,
			AvailableCopies: 2,
			IsActive:        true,
		}, nil)
		books.EXPECT().ReserveCopy(ctx, bookID).Return(nil)
		loans.EXPECT().CreateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
	})

	loan, err := f.service.CreateLoan(ctx, usecase.CreateLoanInput{
		PatronID: patronID,
		BookID:   bookID,
		IssuedBy: staffID,
	})
	require.NoError(t, err)
	require.NotNil(t, loan)
	assert.Equal(t, patronID, loan.PatronID)
	assert.Equal(t, bookID, loan.BookID)
	assert.Equal(t, staffID, loan.IssuedBy)
	assert.Equal(t, entity.LoanActive, loan.Status)
	assert.Equal(t, 0, loan.RenewalCount)
	// Default loan period is 14 days.
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), loan.DueAt, time.Minute)
}

func TestCirculationService_CreateLoan_ExplicitDueDate(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	patronID := uuid.New()
	bookID := uuid.New()
	dueAt := time.Now().Add(3 * 24 * time.Hour).Truncate(time.Second)

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		patrons.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
		loans.EXPECT().FindOpenLoansByPatron(ctx, patronID).Return(nil, nil)
		loans.EXPECT().HasUnpaidFines(ctx, patronID).Return(false, nil)
		books.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{
			ID: bookID, TotalCopies: 1, AvailableCopies: 1, IsActive: true,
		}, nil)
		books.EXPECT().ReserveCopy(ctx, bookID).Return(nil)
		loans.EXPECT().CreateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
	})

	loan, err := f.service.CreateLoan(ctx, usecase.CreateLoanInput{
		PatronID: patronID,
		BookID:   bookID,
		IssuedBy: uuid.New(),
		DueAt:    &dueAt,
	})
	require.NoError(t, err)
	assert.True(t, loan.DueAt.Equal(dueAt))
}

func TestCirculationService_ReturnLoan_OnTime(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	bookID := uuid.New()
	patronID := uuid.New()
	staffID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			BookID:   bookID,
			PatronID: patronID,
			DueAt:    time.Now().Add(24 * time.Hour),
			Status:   entity.LoanActive,
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		books.EXPECT().ReleaseCopy(ctx, bookID).Return(nil)
	})

	output, err := f.service.ReturnLoan(ctx, usecase.ReturnLoanInput{LoanID: loanID, ReturnedBy: staffID})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.LoanReturned, output.Loan.Status)
	require.NotNil(t, output.Loan.ReturnedAt)
	require.NotNil(t, output.Loan.ReturnedBy)
	assert.Equal(t, staffID, *output.Loan.ReturnedBy)
	assert.Zero(t, output.FineAmount)
}

func TestCirculationService_ReturnLoan_OverdueAssessesFine(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	bookID := uuid.New()
	patronID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			BookID:   bookID,
			PatronID: patronID,
			// Ten full days late: 7*1 + 3*2 = 13.
			DueAt:  time.Now().Add(-10 * 24 * time.Hour),
			Status: entity.LoanOverdue,
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		books.EXPECT().ReleaseCopy(ctx, bookID).Return(nil)
		patrons.EXPECT().AddToOutstandingFines(ctx, patronID, mock.AnythingOfType("int64")).Return(nil)
	})

	output, err := f.service.ReturnLoan(ctx, usecase.ReturnLoanInput{LoanID: loanID, ReturnedBy: uuid.New()})
	require.NoError(t, err)
	// The return happens a moment after the 10-day mark, so the started
	// 11th day is charged at the escalated rate.
	assert.Equal(t, int64(15), output.FineAmount)
	assert.False(t, output.Loan.Fine.IsPaid)
}

func TestCirculationService_RenewLoan_Success(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	patronID := uuid.New()
	staffID := uuid.New()
	dueAt := time.Now().Add(5 * 24 * time.Hour).Truncate(time.Second)

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			PatronID: patronID,
			DueAt:    dueAt,
			Status:   entity.LoanActive,
		}, nil)
		loans.EXPECT().HasUnpaidFines(ctx, patronID).Return(false, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		loans.EXPECT().AppendRenewalEntry(ctx, mock.AnythingOfType("*entity.RenewalEntry")).Return(nil)
	})

	loan, err := f.service.RenewLoan(ctx, usecase.RenewLoanInput{LoanID: loanID, RenewedBy: staffID})
	require.NoError(t, err)
	assert.Equal(t, 1, loan.RenewalCount)
	// The renewal stacks on the previous due date.
	assert.True(t, loan.DueAt.Equal(dueAt.Add(14*24*time.Hour)))
	require.Len(t, loan.RenewalHistory, 1)
	assert.Equal(t, staffID, loan.RenewalHistory[0].RenewedBy)
	assert.True(t, loan.RenewalHistory[0].NewDueDate.Equal(loan.DueAt))
}

func TestCirculationService_PayFine_PartialThenSettled(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	patronID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			PatronID: patronID,
			Status:   entity.LoanReturned,
			Fine:     entity.Fine{Amount: 10, PaidAmount: 0},
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		patrons.EXPECT().AddToOutstandingFines(ctx, patronID, int64(-4)).Return(nil)
	})

	loan, err := f.service.PayFine(ctx, usecase.PayFineInput{LoanID: loanID, Amount: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), loan.Fine.PaidAmount)
	assert.False(t, loan.Fine.IsPaid)

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			PatronID: patronID,
			Status:   entity.LoanReturned,
			Fine:     entity.Fine{Amount: 10, PaidAmount: 4},
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		patrons.EXPECT().AddToOutstandingFines(ctx, patronID, int64(-6)).Return(nil)
	})

	loan, err = f.service.PayFine(ctx, usecase.PayFineInput{LoanID: loanID, Amount: 6})
	require.NoError(t, err)
	assert.True(t, loan.Fine.IsPaid)
	assert.Zero(t, loan.Fine.Outstanding())
}

func TestCirculationService_PayFine_OpenLoanSkipsAggregate(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			PatronID: uuid.New(),
			DueAt:    time.Now().Add(-2 * 24 * time.Hour),
			Status:   entity.LoanOverdue,
			Fine:     entity.Fine{Amount: 2},
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
	})

	loan, err := f.service.PayFine(ctx, usecase.PayFineInput{LoanID: loanID, Amount: 2})
	require.NoError(t, err)
	assert.True(t, loan.Fine.IsPaid)
}

func TestCirculationService_MarkLost_AssessesCapAndRemovesCopy(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	bookID := uuid.New()
	patronID := uuid.New()
	staffID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindLoanByIDForUpdate(ctx, loanID).Return(&entity.Loan{
			ID:       loanID,
			BookID:   bookID,
			PatronID: patronID,
			DueAt:    time.Now().Add(-30 * 24 * time.Hour),
			Status:   entity.LoanOverdue,
			Fine:     entity.Fine{Amount: 40},
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)
		books.EXPECT().RemoveLostCopy(ctx, bookID).Return(nil)
		patrons.EXPECT().AddToOutstandingFines(ctx, patronID, int64(50)).Return(nil)
	})

	loan, err := f.service.MarkLost(ctx, usecase.MarkLostInput{LoanID: loanID, MarkedBy: staffID})
	require.NoError(t, err)
	assert.Equal(t, entity.LoanLost, loan.Status)
	assert.Equal(t, int64(50), loan.Fine.Amount)
	assert.Nil(t, loan.ReturnedAt)
}

func TestCirculationService_SweepOverdue_MarksAndNotifies(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	now := time.Now()
	loanID := uuid.New()
	bookID := uuid.New()
	patronID := uuid.New()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindDueLoansForUpdate(ctx, now).Return([]*entity.Loan{
			{
				ID:       loanID,
				BookID:   bookID,
				PatronID: patronID,
				DueAt:    now.Add(-3 * 24 * time.Hour),
				Status:   entity.LoanActive,
			},
		}, nil)
		loans.EXPECT().UpdateLoan(ctx, mock.MatchedBy(func(loan *entity.Loan) bool {
			return loan.Status == entity.LoanOverdue && loan.Fine.Amount == 3
		})).Return(nil)
		books.EXPECT().FindBookByID(ctx, bookID).Return(&entity.Book{ID: bookID, Title: "The Go Programming Language"}, nil)
		patrons.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID, NotificationToken: "fcm-token"}, nil)
	})

	f.eventPublisher.EXPECT().
		PublishOverdueNotice(ctx, mock.MatchedBy(func(event *service.OverdueNoticeEvent) bool {
			return event.LoanID == loanID.String() && event.FineAmount == 3 && event.NotificationToken == "fcm-token"
		})).
		Return(nil)

	output, err := f.service.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Processed)
	assert.Equal(t, 1, output.NewlyOverdue)
}

func TestCirculationService_SweepOverdue_IdempotentForSettledState(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	now := time.Now()

	f.expectTransaction(t, ctx, func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository) {
		loans.EXPECT().FindDueLoansForUpdate(ctx, now).Return([]*entity.Loan{
			{
				ID:       uuid.New(),
				BookID:   uuid.New(),
				PatronID: uuid.New(),
				DueAt:    now.Add(-2 * 24 * time.Hour),
				Status:   entity.LoanOverdue,
				Fine:     entity.Fine{Amount: 2},
			},
		}, nil)
	})

	output, err := f.service.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, output.Processed)
	assert.Zero(t, output.NewlyOverdue)
}

func TestCirculationService_GetLoan_Success(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()

	f.loanRepo.EXPECT().FindLoanByID(ctx, loanID).Return(&entity.Loan{ID: loanID}, nil)

	loan, err := f.service.GetLoan(ctx, loanID)
	require.NoError(t, err)
	assert.Equal(t, loanID, loan.ID)
}

func TestCirculationService_ListPatronLoans_Success(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	patronID := uuid.New()

	f.patronRepo.EXPECT().FindPatronByID(ctx, patronID).Return(&entity.Patron{ID: patronID}, nil)
	f.loanRepo.EXPECT().FindLoansByPatron(ctx, patronID).Return([]*entity.Loan{
		{ID: uuid.New(), Status: entity.LoanReturned},
		{ID: uuid.New(), Status: entity.LoanActive},
	}, nil)

	loans, err := f.service.ListPatronLoans(ctx, patronID)
	require.NoError(t, err)
	assert.Len(t, loans, 2)
}

func TestCirculationService_LoanReceipt_RoundTrip(t *testing.T) {
	f := createTestCirculationService(t)

	ctx := context.Background()
	loanID := uuid.New()
	receipt := []byte("png-bytes")

	f.loanRepo.EXPECT().FindLoanByID(ctx, loanID).Return(&entity.Loan{ID: loanID}, nil).Twice()
	f.receiptService.EXPECT().GenerateLoanReceipt(loanID).Return(receipt, nil)
	f.receiptService.EXPECT().ParseLoanReceipt("scanned-data").Return(loanID, nil)

	generated, err := f.service.GetLoanReceipt(ctx, loanID)
	require.NoError(t, err)
	assert.Equal(t, receipt, generated)

	loan, err := f.service.ResolveLoanReceipt(ctx, "scanned-data")
	require.NoError(t, err)
	assert.Equal(t, loanID, loan.ID)
}
