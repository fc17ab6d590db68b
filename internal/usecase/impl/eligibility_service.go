// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"circulate/config"
	deliverycontext "circulate/internal/delivery/context"
	domainerrors "circulate/internal/domain/errors"
	"circulate/internal/domain/policy"
	"circulate/internal/domain/repository"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eligibilityService implements the EligibilityUsecase interface.
type eligibilityService struct {
	bookRepo   repository.BookRepository
	patronRepo repository.PatronRepository
	loanRepo   repository.LoanRepository
	rules      policy.CirculationPolicy
	logger     *slog.Logger
}

// EligibilityServiceParams holds dependencies for EligibilityService, injected by Fx.
type EligibilityServiceParams struct {
	fx.In

	BookRepo   repository.BookRepository
	PatronRepo repository.PatronRepository
	LoanRepo   repository.LoanRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewEligibilityService creates a new eligibility service instance
func NewEligibilityService(params EligibilityServiceParams) usecase.EligibilityUsecase {
	return &eligibilityService{
		bookRepo:   params.BookRepo,
		patronRepo: params.PatronRepo,
		loanRepo:   params.LoanRepo,
		rules:      policyFromConfig(params.Config),
		logger:     params.Logger,
	}
}

func (srv *eligibilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckEligibility evaluates the borrowing rules for a patron and book
// without creating a loan. The outcome is advisory: checkout re-evaluates
// the same rules inside its transaction.
func (srv *eligibilityService) CheckEligibility(ctx context.Context, patronID, bookID uuid.UUID) (*usecase.EligibilityOutput, error) {
	err := evaluateEligibility(ctx, srv.bookRepo, srv.patronRepo, srv.loanRepo, srv.rules, patronID, bookID, time.Now())
	if err == nil {
		return &usecase.EligibilityOutput{Eligible: true}, nil
	}

	var ineligible *domainerrors.IneligibleError
	if errors.As(err, &ineligible) {
		srv.log(ctx).Debug("Patron is not eligible to borrow",
			slog.Any("patronID", patronID),
			slog.Any("bookID", bookID),
			slog.String("reason", string(ineligible.Reason())))

		return &usecase.EligibilityOutput{
			Eligible: false,
			Reason:   ineligible.Reason(),
			Message:  ineligible.Message(),
		}, nil
	}

	return nil, errors.Wrap(err, "failed to evaluate borrow eligibility")
}

// evaluateEligibility applies the borrowing rules in their fixed order and
// returns nil when the patron may borrow the book. Rule failures surface as
// *domainerrors.IneligibleError; missing records surface as not-found
// application errors. Checkout calls this against transaction-bound
// repositories so the verdict and the copy reservation commit together.
func evaluateEligibility(
	ctx context.Context,
	bookRepo repository.BookRepository,
	patronRepo repository.PatronRepository,
	loanRepo repository.LoanRepository,
	rules policy.CirculationPolicy,
	patronID, bookID uuid.UUID,
	now time.Time,
) error {
	if _, err := patronRepo.FindPatronByID(ctx, patronID); err != nil {
		if errors.Is(err, repository.ErrPatronNotFound) {
			return domainerrors.ErrPatronNotFound.WrapMessage("eligibility check failed")
		}

		return errors.Wrap(err, "failed to find patron by id")
	}

	openLoans, err := loanRepo.FindOpenLoansByPatron(ctx, patronID)
	if err != nil {
		return errors.Wrap(err, "failed to find open loans by patron")
	}

	for _, loan := range openLoans {
		if loan.BookID == bookID {
			return domainerrors.NewIneligibleError(
				domainerrors.ReasonDuplicateActiveLoan,
				"patron already holds an open loan for this book",
			)
		}
	}

	if len(openLoans) >= rules.MaxActiveLoans {
		return domainerrors.NewIneligibleError(
			domainerrors.ReasonBorrowLimitReached,
			fmt.Sprintf("patron already holds %d open loans (limit %d)", len(openLoans), rules.MaxActiveLoans),
		)
	}

	// An unswept past-due loan blocks borrowing the same as a swept one.
	for _, loan := range openLoans {
		if loan.IsOverdueAt(now) {
			return domainerrors.NewIneligibleError(
				domainerrors.ReasonHasOverdueLoan,
				"patron holds an overdue loan",
			)
		}
	}

	hasUnpaid, err := loanRepo.HasUnpaidFines(ctx, patronID)
	if err != nil {
		return errors.Wrap(err, "failed to check unpaid fines")
	}
	if hasUnpaid {
		return domainerrors.NewIneligibleError(
			domainerrors.ReasonHasUnpaidFine,
			"patron has unpaid fines",
		)
	}

	book, err := bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return domainerrors.ErrBookNotFound.WrapMessage("eligibility check failed")
		}

		return errors.Wrap(err, "failed to find book by id")
	}

	if !book.IsActive {
		return domainerrors.NewIneligibleError(
			domainerrors.ReasonBookInactive,
			"book is not available for borrowing",
		)
	}

	if book.AvailableCopies <= 0 {
		return domainerrors.NewIneligibleError(
			domainerrors.ReasonNoCopiesAvailable,
			"all copies of this book are out on loan",
		)
	}

	return nil
}

// policyFromConfig builds the circulation rules from configuration, falling
// back to the defaults for any unset value.
func policyFromConfig(cfg *config.Config) policy.CirculationPolicy {
	rules := policy.DefaultCirculationPolicy()
	if cfg == nil || cfg.Circulation == nil {
		return rules
	}

	circ := cfg.Circulation
	if circ.MaxActiveLoans > 0 {
		rules.MaxActiveLoans = circ.MaxActiveLoans
	}
	if circ.MaxRenewals > 0 {
		rules.MaxRenewals = circ.MaxRenewals
	}
	if circ.LoanPeriodDays > 0 {
		rules.LoanPeriod = time.Duration(circ.LoanPeriodDays) * 24 * time.Hour
	}
	if circ.RenewalPeriodDays > 0 {
		rules.RenewalPeriod = time.Duration(circ.RenewalPeriodDays) * 24 * time.Hour
	}
	if circ.FineDailyRate > 0 {
		rules.Fine.DailyRate = circ.FineDailyRate
	}
	if circ.FineEscalatedRate > 0 {
		rules.Fine.EscalatedRate = circ.FineEscalatedRate
	}
	if circ.FineEscalationAfterDays > 0 {
		rules.Fine.EscalationAfterDays = circ.FineEscalationAfterDays
	}
	if circ.FineCap > 0 {
		rules.Fine.Cap = circ.FineCap
	}

	return rules
}
