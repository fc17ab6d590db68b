package service

import "github.com/google/uuid"

// ReceiptService produces scannable loan receipts. A receipt encodes the
// loan ID so staff can scan a slip at the return desk instead of typing it.
type ReceiptService interface {
	// GenerateLoanReceipt renders a QR code PNG for the loan.
	GenerateLoanReceipt(loanID uuid.UUID) ([]byte, error)

	// ParseLoanReceipt decodes scanned receipt data back into a loan ID.
	ParseLoanReceipt(data string) (uuid.UUID, error)
}
