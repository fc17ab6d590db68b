package postgres

import (
	"context"
	"time"

	"circulate/internal/domain/entity"
	"circulate/internal/domain/repository"
	"circulate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loanRepository implements the repository.LoanRepository interface using GORM.
// Loan rows are never deleted; update paths only touch the mutable columns.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

var openLoanStatuses = []string{string(entity.LoanActive), string(entity.LoanOverdue)}

// CreateLoan persists a new loan record.
func (repo *loanRepository) CreateLoan(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.db.WithContext(ctx).Omit("Renewals").Create(loanM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "loan references unknown book or patron")
		}

		return errors.Wrap(err, "failed to create loan")
	}

	// Update the entity with generated values
	loan.ID = loanM.ID
	loan.CreatedAt = loanM.CreatedAt
	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// FindLoanByID retrieves a loan with its renewal history.
func (repo *loanRepository) FindLoanByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanM model.LoanModel

	if err := repo.db.WithContext(ctx).
		Preload("Renewals", func(db *gorm.DB) *gorm.DB {
			return db.Order("renewal_date ASC")
		}).
		Where("id = ?", id).
		First(&loanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by ID")
	}

	return toLoanDomain(&loanM), nil
}

// FindLoanByIDForUpdate retrieves a loan under a FOR UPDATE row lock,
// serializing concurrent return, renew and pay operations on the same loan.
func (repo *loanRepository) FindLoanByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanM model.LoanModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&loanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by ID for update")
	}

	// The row lock only covers the loans table; the history is read separately.
	if err := repo.db.WithContext(ctx).
		Where("loan_id = ?", id).
		Order("renewal_date ASC").
		Find(&loanM.Renewals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load renewal history")
	}

	return toLoanDomain(&loanM), nil
}

// FindOpenLoansByPatron retrieves the patron's Active and Overdue loans.
func (repo *loanRepository) FindOpenLoansByPatron(ctx context.Context, patronID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []*model.LoanModel

	if err := repo.db.WithContext(ctx).
		Where("patron_id = ? AND status IN ?", patronID, openLoanStatuses).
		Order("due_at ASC").
		Find(&loanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open loans by patron")
	}

	return toLoanDomainSlice(loanModels), nil
}

// FindLoansByPatron retrieves the patron's full borrowing history, newest first.
func (repo *loanRepository) FindLoansByPatron(ctx context.Context, patronID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []*model.LoanModel

	if err := repo.db.WithContext(ctx).
		Preload("Renewals", func(db *gorm.DB) *gorm.DB {
			return db.Order("renewal_date ASC")
		}).
		Where("patron_id = ?", patronID).
		Order("borrowed_at DESC").
		Find(&loanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find loans by patron")
	}

	return toLoanDomainSlice(loanModels), nil
}

// HasUnpaidFines reports whether any of the patron's loans, open or closed,
// carries an assessed fine that has not been fully paid.
func (repo *loanRepository) HasUnpaidFines(ctx context.Context, patronID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("patron_id = ? AND fine_amount > 0 AND fine_is_paid = ?", patronID, false).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count unpaid fines")
	}

	return count > 0, nil
}

// FindDueLoansForUpdate retrieves all open loans due before cutoff under
// FOR UPDATE row locks, so a sweep cannot race a concurrent return.
func (repo *loanRepository) FindDueLoansForUpdate(ctx context.Context, cutoff time.Time) ([]*entity.Loan, error) {
	var loanModels []*model.LoanModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("status IN ? AND due_at < ?", openLoanStatuses, cutoff).
		Order("due_at ASC").
		Find(&loanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due loans for update")
	}

	return toLoanDomainSlice(loanModels), nil
}

// UpdateLoan persists the loan's mutable columns. Renewal history rows are
// appended through AppendRenewalEntry and never rewritten here.
func (repo *loanRepository) UpdateLoan(ctx context.Context, loan *entity.Loan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("id = ?", loan.ID).
		Updates(map[string]interface{}{
			"status":           string(loan.Status),
			"due_at":           loan.DueAt,
			"returned_at":      loan.ReturnedAt,
			"returned_by":      loan.ReturnedBy,
			"renewal_count":    loan.RenewalCount,
			"fine_amount":      loan.Fine.Amount,
			"fine_paid_amount": loan.Fine.PaidAmount,
			"fine_is_paid":     loan.Fine.IsPaid,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update loan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	return nil
}

// AppendRenewalEntry appends one audit row to the loan's renewal history.
func (repo *loanRepository) AppendRenewalEntry(ctx context.Context, entry *entity.RenewalEntry) error {
	entryM := fromRenewalEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to append renewal entry")
	}

	entry.ID = entryM.ID

	return nil
}

// --- Mapper Functions ---

// toLoanDomain converts a GORM LoanModel to a domain Loan entity.
func toLoanDomain(data *model.LoanModel) *entity.Loan {
	if data == nil {
		return nil
	}

	history := make([]entity.RenewalEntry, 0, len(data.Renewals))
	for _, renewal := range data.Renewals {
		history = append(history, entity.RenewalEntry{
			ID:          renewal.ID,
			LoanID:      renewal.LoanID,
			RenewalDate: renewal.RenewalDate,
			NewDueDate:  renewal.NewDueDate,
			RenewedBy:   renewal.RenewedBy,
		})
	}

	return &entity.Loan{
		ID:           data.ID,
		BookID:       data.BookID,
		PatronID:     data.PatronID,
		BorrowedAt:   data.BorrowedAt,
		DueAt:        data.DueAt,
		ReturnedAt:   data.ReturnedAt,
		RenewalCount: data.RenewalCount,
		Status:       entity.LoanStatus(data.Status),
		Fine: entity.Fine{
			Amount:     data.FineAmount,
			PaidAmount: data.FinePaidAmount,
			IsPaid:     data.FineIsPaid,
		},
		IssuedBy:       data.IssuedBy,
		ReturnedBy:     data.ReturnedBy,
		RenewalHistory: history,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toLoanDomainSlice(models []*model.LoanModel) []*entity.Loan {
	loans := make([]*entity.Loan, 0, len(models))
	for _, loanM := range models {
		loans = append(loans, toLoanDomain(loanM))
	}

	return loans
}

// fromLoanDomain converts a domain Loan entity to a GORM LoanModel for persistence.
func fromLoanDomain(data *entity.Loan) *model.LoanModel {
	if data == nil {
		return nil
	}

	return &model.LoanModel{
		ID:             data.ID,
		BookID:         data.BookID,
		PatronID:       data.PatronID,
		BorrowedAt:     data.BorrowedAt,
		DueAt:          data.DueAt,
		ReturnedAt:     data.ReturnedAt,
		RenewalCount:   data.RenewalCount,
		Status:         string(data.Status),
		FineAmount:     data.Fine.Amount,
		FinePaidAmount: data.Fine.PaidAmount,
		FineIsPaid:     data.Fine.IsPaid,
		IssuedBy:       data.IssuedBy,
		ReturnedBy:     data.ReturnedBy,
	}
}

// fromRenewalEntryDomain converts a domain RenewalEntry to its GORM model.
func fromRenewalEntryDomain(data *entity.RenewalEntry) *model.LoanRenewalModel {
	if data == nil {
		return nil
	}

	return &model.LoanRenewalModel{
		ID:          data.ID,
		LoanID:      data.LoanID,
		RenewalDate: data.RenewalDate,
		NewDueDate:  data.NewDueDate,
		RenewedBy:   data.RenewedBy,
	}
}
