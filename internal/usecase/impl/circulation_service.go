package impl

import (
	"context"
	"log/slog"
	"time"

	"circulate/config"
	deliverycontext "circulate/internal/delivery/context"
	"circulate/internal/domain/entity"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/policy"
	"circulate/internal/domain/repository"
	"circulate/internal/domain/service"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// circulationService implements the CirculationUsecase interface.
type circulationService struct {
	txManager      repository.TransactionManager
	bookRepo       repository.BookRepository
	patronRepo     repository.PatronRepository
	loanRepo       repository.LoanRepository
	receiptService service.ReceiptService
	eventPublisher service.EventPublisher
	rules          policy.CirculationPolicy
	logger         *slog.Logger
}

// CirculationServiceParams holds dependencies for CirculationService, injected by Fx.
type CirculationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	BookRepo       repository.BookRepository
	PatronRepo     repository.PatronRepository
	LoanRepo       repository.LoanRepository
	ReceiptService service.ReceiptService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCirculationService is the constructor for circulationService. It receives all dependencies as interfaces.
func NewCirculationService(params CirculationServiceParams) usecase.CirculationUsecase {
	return &circulationService{
		txManager:      params.TxManager,
		bookRepo:       params.BookRepo,
		patronRepo:     params.PatronRepo,
		loanRepo:       params.LoanRepo,
		receiptService: params.ReceiptService,
		eventPublisher: params.EventPublisher,
		rules:          policyFromConfig(params.Config),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *circulationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLoan checks out one copy of a book to a patron. Eligibility is
// re-evaluated inside the transaction so the verdict and the copy
// reservation commit together; a stale advisory check can never produce a
// loan without a reserved copy.
func (srv *circulationService) CreateLoan(ctx context.Context, input usecase.CreateLoanInput) (*entity.Loan, error) {
	now := time.Now()
	srv.log(ctx).Info("Creating loan", slog.Any("patronID", input.PatronID), slog.Any("bookID", input.BookID))

	var createdLoan *entity.Loan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		patronRepo := repoFactory.NewPatronRepository()
		loanRepo := repoFactory.NewLoanRepository()

		if err := evaluateEligibility(ctx, bookRepo, patronRepo, loanRepo, srv.rules, input.PatronID, input.BookID, now); err != nil {
			return err
		}

		// The conditional decrement is the real gate. If a concurrent
		// checkout took the last copy after the eligibility read, exactly
		// one of the two reservations succeeds.
		if err := bookRepo.ReserveCopy(ctx, input.BookID); err != nil {
			if errors.Is(err, repository.ErrNoCopiesAvailable) {
				return domainerrors.ErrNoCopiesAvailable.WrapMessage("failed to reserve copy")
			}
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound.WrapMessage("failed to reserve copy")
			}

			return errors.Wrap(err, "failed to reserve copy")
		}

		dueAt := now.Add(srv.rules.LoanPeriod)
		if input.DueAt != nil {
			dueAt = *input.DueAt
		}

		loan := &entity.Loan{
			ID:         uuid.New(),
			BookID:     input.BookID,
			PatronID:   input.PatronID,
			BorrowedAt: now,
			DueAt:      dueAt,
			Status:     entity.LoanActive,
			IssuedBy:   input.IssuedBy,
		}

		if err := loanRepo.CreateLoan(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to create loan record")
		}

		createdLoan = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create loan",
			slog.Any("patronID", input.PatronID), slog.Any("bookID", input.BookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute loan creation transaction")
	}

	srv.log(ctx).Info("Loan created", slog.Any("loanID", createdLoan.ID), slog.Time("dueAt", createdLoan.DueAt))

	return createdLoan, nil
}

// ReturnLoan closes an open loan, releases the copy back to the shelf and
// assesses the final fine for overdue loans. Returning an already-closed
// loan fails without touching the inventory.
func (srv *circulationService) ReturnLoan(ctx context.Context, input usecase.ReturnLoanInput) (*usecase.ReturnLoanOutput, error) {
	now := time.Now()

	var returnedLoan *entity.Loan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		patronRepo := repoFactory.NewPatronRepository()
		loanRepo := repoFactory.NewLoanRepository()

		loan, err := findOpenLoanForUpdate(ctx, loanRepo, input.LoanID)
		if err != nil {
			return err
		}

		// The final fine can only grow past what a sweep already assessed.
		if amount := srv.rules.Fine.Calculate(loan.DueAt, now); amount > loan.Fine.Amount {
			loan.Fine.Amount = amount
		}
		loan.Fine.IsPaid = loan.Fine.PaidAmount >= loan.Fine.Amount

		loan.Status = entity.LoanReturned
		loan.ReturnedAt = &now
		loan.ReturnedBy = &input.ReturnedBy

		if err := loanRepo.UpdateLoan(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to update loan record")
		}

		if err := bookRepo.ReleaseCopy(ctx, loan.BookID); err != nil {
			return errors.Wrap(err, "failed to release copy")
		}

		if loan.HasUnpaidFine() {
			if err := patronRepo.AddToOutstandingFines(ctx, loan.PatronID, loan.Fine.Outstanding()); err != nil {
				return errors.Wrap(err, "failed to add to outstanding fines")
			}
		}

		returnedLoan = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to return loan", slog.Any("loanID", input.LoanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute loan return transaction")
	}

	srv.log(ctx).Info("Loan returned",
		slog.Any("loanID", returnedLoan.ID), slog.Int64("fineAmount", returnedLoan.Fine.Amount))

	return &usecase.ReturnLoanOutput{Loan: returnedLoan, FineAmount: returnedLoan.Fine.Amount}, nil
}

// RenewLoan extends an active loan's due date and appends a renewal audit
// row. The checks run in a fixed order so callers always see the same
// failure for the same loan state.
func (srv *circulationService) RenewLoan(ctx context.Context, input usecase.RenewLoanInput) (*entity.Loan, error) {
	now := time.Now()

	var renewedLoan *entity.Loan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.NewLoanRepository()

		loan, err := loanRepo.FindLoanByIDForUpdate(ctx, input.LoanID)
		if err != nil {
			if errors.Is(err, repository.ErrLoanNotFound) {
				return domainerrors.ErrLoanNotFound.WrapMessage("failed to renew loan")
			}

			return errors.Wrap(err, "failed to find loan by id")
		}

		if input.PatronID != nil && *input.PatronID != loan.PatronID {
			return domainerrors.ErrNotAuthorized.WrapMessage("failed to renew loan")
		}

		if loan.Status == entity.LoanReturned {
			return domainerrors.ErrAlreadyReturned.WrapMessage("failed to renew loan")
		}
		if !loan.IsOpen() {
			return domainerrors.ErrLoanNotOpen.WrapMessage("failed to renew loan")
		}

		// A past-due loan that no sweep has visited yet is still overdue.
		if loan.IsOverdueAt(now) {
			return domainerrors.ErrCannotRenewOverdue.WrapMessage("failed to renew loan")
		}

		if loan.RenewalCount >= srv.rules.MaxRenewals {
			return domainerrors.ErrMaxRenewalsReached.WrapMessage("failed to renew loan")
		}

		hasUnpaid, err := loanRepo.HasUnpaidFines(ctx, loan.PatronID)
		if err != nil {
			return errors.Wrap(err, "failed to check unpaid fines")
		}
		if hasUnpaid {
			return domainerrors.ErrRenewalBlockedByFine.WrapMessage("failed to renew loan")
		}

		// The extension stacks on the current due date, not on today.
		newDueDate := loan.DueAt.Add(srv.rules.RenewalPeriod)
		loan.DueAt = newDueDate
		loan.RenewalCount++

		if err := loanRepo.UpdateLoan(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to update loan record")
		}

		entry := &entity.RenewalEntry{
			ID:          uuid.New(),
			LoanID:      loan.ID,
			RenewalDate: now,
			NewDueDate:  newDueDate,
			RenewedBy:   input.RenewedBy,
		}
		if err := loanRepo.AppendRenewalEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append renewal entry")
		}

		loan.RenewalHistory = append(loan.RenewalHistory, *entry)
		renewedLoan = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to renew loan", slog.Any("loanID", input.LoanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute loan renewal transaction")
	}

	srv.log(ctx).Info("Loan renewed",
		slog.Any("loanID", renewedLoan.ID),
		slog.Int("renewalCount", renewedLoan.RenewalCount),
		slog.Time("dueAt", renewedLoan.DueAt))

	return renewedLoan, nil
}

// PayFine applies a payment against a loan's outstanding fine. Partial
// payments are allowed; overpayments are rejected rather than refunded.
func (srv *circulationService) PayFine(ctx context.Context, input usecase.PayFineInput) (*entity.Loan, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment amount must be positive")
	}

	var paidLoan *entity.Loan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patronRepo := repoFactory.NewPatronRepository()
		loanRepo := repoFactory.NewLoanRepository()

		loan, err := loanRepo.FindLoanByIDForUpdate(ctx, input.LoanID)
		if err != nil {
			if errors.Is(err, repository.ErrLoanNotFound) {
				return domainerrors.ErrLoanNotFound.WrapMessage("failed to pay fine")
			}

			return errors.Wrap(err, "failed to find loan by id")
		}

		if input.Amount > loan.Fine.Outstanding() {
			return domainerrors.ErrPaymentExceedsOwed.WrapMessage("failed to pay fine")
		}

		loan.Fine.PaidAmount += input.Amount
		loan.Fine.IsPaid = loan.Fine.PaidAmount >= loan.Fine.Amount

		if err := loanRepo.UpdateLoan(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to update loan record")
		}

		// Open-loan fines are not part of the aggregate until the loan closes.
		if !loan.IsOpen() {
			if err := patronRepo.AddToOutstandingFines(ctx, loan.PatronID, -input.Amount); err != nil {
				return errors.Wrap(err, "failed to reduce outstanding fines")
			}
		}

		paidLoan = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to pay fine", slog.Any("loanID", input.LoanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute fine payment transaction")
	}

	srv.log(ctx).Info("Fine payment recorded",
		slog.Any("loanID", paidLoan.ID),
		slog.Int64("paidAmount", paidLoan.Fine.PaidAmount),
		slog.Bool("settled", paidLoan.Fine.IsPaid))

	return paidLoan, nil
}

// MarkLost closes a loan as lost. The copy is written off the book's total
// count instead of going back on the shelf, and the maximum fine is
// assessed against the patron.
func (srv *circulationService) MarkLost(ctx context.Context, input usecase.MarkLostInput) (*entity.Loan, error) {
	var lostLoan *entity.Loan
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		patronRepo := repoFactory.NewPatronRepository()
		loanRepo := repoFactory.NewLoanRepository()

		loan, err := findOpenLoanForUpdate(ctx, loanRepo, input.LoanID)
		if err != nil {
			return err
		}

		if srv.rules.Fine.Cap > loan.Fine.Amount {
			loan.Fine.Amount = srv.rules.Fine.Cap
		}
		loan.Fine.IsPaid = loan.Fine.PaidAmount >= loan.Fine.Amount

		loan.Status = entity.LoanLost
		loan.ReturnedBy = &input.MarkedBy

		if err := loanRepo.UpdateLoan(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to update loan record")
		}

		if err := bookRepo.RemoveLostCopy(ctx, loan.BookID); err != nil {
			return errors.Wrap(err, "failed to remove lost copy from inventory")
		}

		if loan.HasUnpaidFine() {
			if err := patronRepo.AddToOutstandingFines(ctx, loan.PatronID, loan.Fine.Outstanding()); err != nil {
				return errors.Wrap(err, "failed to add to outstanding fines")
			}
		}

		lostLoan = loan

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to mark loan lost", slog.Any("loanID", input.LoanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute mark-lost transaction")
	}

	srv.log(ctx).Info("Loan marked lost",
		slog.Any("loanID", lostLoan.ID), slog.Int64("fineAmount", lostLoan.Fine.Amount))

	return lostLoan, nil
}

// sweepNotice carries the data for one overdue notice out of the sweep
// transaction, so publishing happens only after the commit.
type sweepNotice struct {
	event *service.OverdueNoticeEvent
}

// SweepOverdue transitions every open loan due before now to overdue and
// refreshes its accrued fine. The sweep locks the due loans so a concurrent
// return cannot race the status change. Notices for newly overdue loans are
// published after the commit; publish failures are logged, never returned.
func (srv *circulationService) SweepOverdue(ctx context.Context, now time.Time) (*usecase.SweepOutput, error) {
	srv.log(ctx).Info("Starting overdue sweep", slog.Time("cutoff", now))

	var output usecase.SweepOutput
	var notices []sweepNotice

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		patronRepo := repoFactory.NewPatronRepository()
		loanRepo := repoFactory.NewLoanRepository()

		dueLoans, err := loanRepo.FindDueLoansForUpdate(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to find due loans")
		}

		for _, loan := range dueLoans {
			newlyOverdue := loan.Status == entity.LoanActive
			changed := newlyOverdue

			if newlyOverdue {
				loan.Status = entity.LoanOverdue
			}

			if amount := srv.rules.Fine.Calculate(loan.DueAt, now); amount > loan.Fine.Amount {
				loan.Fine.Amount = amount
				loan.Fine.IsPaid = loan.Fine.PaidAmount >= amount
				changed = true
			}

			if !changed {
				continue
			}

			if err := loanRepo.UpdateLoan(ctx, loan); err != nil {
				return errors.Wrap(err, "failed to update loan during sweep")
			}
			output.Processed++

			if !newlyOverdue {
				continue
			}
			output.NewlyOverdue++

			notice, err := srv.buildOverdueNotice(ctx, bookRepo, patronRepo, loan)
			if err != nil {
				return err
			}
			notices = append(notices, notice)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Overdue sweep failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute overdue sweep transaction")
	}

	srv.publishOverdueNotices(ctx, notices)

	srv.log(ctx).Info("Overdue sweep completed",
		slog.Int("processed", output.Processed), slog.Int("newlyOverdue", output.NewlyOverdue))

	return &output, nil
}

func (srv *circulationService) buildOverdueNotice(
	ctx context.Context,
	bookRepo repository.BookRepository,
	patronRepo repository.PatronRepository,
	loan *entity.Loan,
) (sweepNotice, error) {
	book, err := bookRepo.FindBookByID(ctx, loan.BookID)
	if err != nil {
		return sweepNotice{}, errors.Wrap(err, "failed to load book for overdue notice")
	}

	patron, err := patronRepo.FindPatronByID(ctx, loan.PatronID)
	if err != nil {
		return sweepNotice{}, errors.Wrap(err, "failed to load patron for overdue notice")
	}

	return sweepNotice{event: &service.OverdueNoticeEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		LoanID:            loan.ID.String(),
		PatronID:          loan.PatronID.String(),
		BookID:            loan.BookID.String(),
		BookTitle:         book.Title,
		DueAt:             loan.DueAt,
		FineAmount:        loan.Fine.Amount,
		NotificationToken: patron.NotificationToken,
	}}, nil
}

// publishOverdueNotices delivers notices on a best-effort basis after the
// sweep has committed. The persisted overdue state is the source of truth.
func (srv *circulationService) publishOverdueNotices(ctx context.Context, notices []sweepNotice) {
	for _, notice := range notices {
		if err := srv.eventPublisher.PublishOverdueNotice(ctx, notice.event); err != nil {
			srv.log(ctx).Warn("Failed to publish overdue notice",
				slog.String("loanID", notice.event.LoanID), slog.Any("error", err))
		}
	}
}

// GetLoan retrieves a loan with its renewal history.
func (srv *circulationService) GetLoan(ctx context.Context, loanID uuid.UUID) (*entity.Loan, error) {
	loan, err := srv.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, repository.ErrLoanNotFound) {
			return nil, domainerrors.ErrLoanNotFound.WrapMessage("failed to get loan")
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	return loan, nil
}

// ListPatronLoans retrieves the patron's full borrowing history.
func (srv *circulationService) ListPatronLoans(ctx context.Context, patronID uuid.UUID) ([]*entity.Loan, error) {
	if _, err := srv.patronRepo.FindPatronByID(ctx, patronID); err != nil {
		if errors.Is(err, repository.ErrPatronNotFound) {
			return nil, domainerrors.ErrPatronNotFound.WrapMessage("failed to list loans")
		}

		return nil, errors.Wrap(err, "failed to find patron by id")
	}

	loans, err := srv.loanRepo.FindLoansByPatron(ctx, patronID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loans by patron")
	}

	return loans, nil
}

// GetLoanReceipt generates a scannable QR receipt for a loan.
func (srv *circulationService) GetLoanReceipt(ctx context.Context, loanID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetLoan(ctx, loanID); err != nil {
		return nil, err
	}

	receipt, err := srv.receiptService.GenerateLoanReceipt(loanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate loan receipt")
	}

	return receipt, nil
}

// ResolveLoanReceipt resolves scanned receipt data back to its loan.
func (srv *circulationService) ResolveLoanReceipt(ctx context.Context, receiptData string) (*entity.Loan, error) {
	loanID, err := srv.receiptService.ParseLoanReceipt(receiptData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid loan receipt")
	}

	return srv.GetLoan(ctx, loanID)
}

// findOpenLoanForUpdate loads and row-locks a loan that must still be open.
// Closed loans yield the precise lifecycle error for their terminal state.
func findOpenLoanForUpdate(ctx context.Context, loanRepo repository.LoanRepository, loanID uuid.UUID) (*entity.Loan, error) {
	loan, err := loanRepo.FindLoanByIDForUpdate(ctx, loanID)
	if err != nil {
		if errors.Is(err, repository.ErrLoanNotFound) {
			return nil, domainerrors.ErrLoanNotFound.WrapMessage("loan lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	if loan.Status == entity.LoanReturned {
		return nil, domainerrors.ErrAlreadyReturned.WrapMessage("loan is closed")
	}
	if !loan.IsOpen() {
		return nil, domainerrors.ErrLoanNotOpen.WrapMessage("loan is closed")
	}

	return loan, nil
}
