// Package qrcode renders and decodes scannable loan receipts.
package qrcode

import (
	"encoding/json"
	"fmt"

	"circulate/config"
	"circulate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultReceiptSize = 256
	receiptDataType    = "loan_receipt"
)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the payload encoded into a receipt QR code
type ReceiptData struct {
	LoanID string `json:"loan_id"`
	Type   string `json:"type"`
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(cfg *config.Config) service.ReceiptService {
	size := defaultReceiptSize
	levelName := ""
	if cfg != nil && cfg.Receipt != nil {
		if cfg.Receipt.Size > 0 {
			size = cfg.Receipt.Size
		}
		levelName = cfg.Receipt.ErrorCorrectionLevel
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLoanReceipt renders a QR code PNG encoding the loan ID.
func (s *receiptService) GenerateLoanReceipt(loanID uuid.UUID) ([]byte, error) {
	data := ReceiptData{
		LoanID: loanID.String(),
		Type:   receiptDataType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLoanReceipt decodes scanned receipt data and returns the loan ID.
func (s *receiptService) ParseLoanReceipt(receiptData string) (uuid.UUID, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(receiptData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal receipt data: %w", err)
	}

	// Validate type
	if data.Type != receiptDataType {
		return uuid.Nil, fmt.Errorf("invalid receipt type: %s", data.Type)
	}

	loanID, err := uuid.Parse(data.LoanID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse loan ID: %w", err)
	}

	return loanID, nil
}
