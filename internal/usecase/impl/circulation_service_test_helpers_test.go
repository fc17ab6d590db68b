package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"circulate/config"
	"circulate/internal/domain/repository"
	mockRepo "circulate/internal/mocks/repository"
	mockSvc "circulate/internal/mocks/service"
	"circulate/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Circulation: &config.CirculationConfig{
			MaxActiveLoans:          5,
			MaxRenewals:             2,
			LoanPeriodDays:          14,
			RenewalPeriodDays:       14,
			FineDailyRate:           1,
			FineEscalatedRate:       2,
			FineEscalationAfterDays: 7,
			FineCap:                 50,
		},
	}
}

// circulationFixtures holds all test dependencies for circulation service tests.
type circulationFixtures struct {
	service        usecase.CirculationUsecase
	txManager      *mockRepo.MockTransactionManager
	bookRepo       *mockRepo.MockBookRepository
	patronRepo     *mockRepo.MockPatronRepository
	loanRepo       *mockRepo.MockLoanRepository
	receiptService *mockSvc.MockReceiptService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestCirculationService(t *testing.T) circulationFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	patronRepo := mockRepo.NewMockPatronRepository(t)
	loanRepo := mockRepo.NewMockLoanRepository(t)
	receiptService := mockSvc.NewMockReceiptService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewCirculationService(CirculationServiceParams{
		TxManager:      txManager,
		BookRepo:       bookRepo,
		PatronRepo:     patronRepo,
		LoanRepo:       loanRepo,
		ReceiptService: receiptService,
		EventPublisher: eventPublisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return circulationFixtures{
		service:        service,
		txManager:      txManager,
		bookRepo:       bookRepo,
		patronRepo:     patronRepo,
		loanRepo:       loanRepo,
		receiptService: receiptService,
		eventPublisher: eventPublisher,
	}
}

// expectTransaction wires the transaction manager to run the transactional
// closure against fresh mock repositories configured by setup. The closure's
// error propagates like a real rollback would.
func (f circulationFixtures) expectTransaction(
	t *testing.T,
	ctx context.Context,
	setup func(books *mockRepo.MockBookRepository, patrons *mockRepo.MockPatronRepository, loans *mockRepo.MockLoanRepository),
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	books := mockRepo.NewMockBookRepository(t)
	patrons := mockRepo.NewMockPatronRepository(t)
	loans := mockRepo.NewMockLoanRepository(t)

	factory.EXPECT().NewBookRepository().Return(books).Maybe()
	factory.EXPECT().NewPatronRepository().Return(patrons).Maybe()
	factory.EXPECT().NewLoanRepository().Return(loans).Maybe()

	setup(books, patrons, loans)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
