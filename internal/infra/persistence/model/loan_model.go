package model

import (
	"time"

	"github.com/google/uuid"
)

// LoanModel mirrors the 'loans' table. Loan rows are never deleted; closed
// loans stay as borrowing history. The fine lives inline on its loan row
// because it is owned exclusively by that loan.
type LoanModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookID         uuid.UUID `gorm:"type:uuid;not null;index"`
	PatronID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BorrowedAt     time.Time `gorm:"not null"`
	DueAt          time.Time `gorm:"not null;index"`
	ReturnedAt     *time.Time
	RenewalCount   int        `gorm:"not null;default:0"`
	Status         string     `gorm:"type:varchar(16);not null;index"`
	FineAmount     int64      `gorm:"not null;default:0"`
	FinePaidAmount int64      `gorm:"not null;default:0"`
	FineIsPaid     bool       `gorm:"not null;default:false"`
	IssuedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ReturnedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Renewals []LoanRenewalModel `gorm:"foreignKey:LoanID"`
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}

// LoanRenewalModel mirrors the 'loan_renewals' table. Rows are append-only;
// together they reconstruct how a loan's due date was reached.
type LoanRenewalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LoanID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RenewalDate time.Time `gorm:"not null"`
	NewDueDate  time.Time `gorm:"not null"`
	RenewedBy   uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName explicitly sets the table name for GORM.
func (LoanRenewalModel) TableName() string {
	return "loan_renewals"
}
