package qrcode

import (
	"encoding/json"
	"testing"

	"circulate/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceiptService(size int, level string) *receiptService {
	cfg := &config.Config{
		Receipt: &config.ReceiptConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
		},
	}

	return NewReceiptService(cfg).(*receiptService)
}

func TestNewReceiptService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newReceiptService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestReceiptService_DefaultsWithoutConfig(t *testing.T) {
	service := NewReceiptService(&config.Config{}).(*receiptService)
	assert.Equal(t, defaultReceiptSize, service.size)
}

func TestReceiptService_GenerateLoanReceipt(t *testing.T) {
	service := newReceiptService(256, "M")
	loanID := uuid.New()

	qrBytes, err := service.GenerateLoanReceipt(loanID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestReceiptService_GenerateLoanReceipt_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small receipt", 128},
		{"Medium receipt", 256},
		{"Large receipt", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newReceiptService(tt.size, "M")

			qrBytes, err := service.GenerateLoanReceipt(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestReceiptService_ParseLoanReceipt(t *testing.T) {
	service := newReceiptService(256, "M")
	loanID := uuid.New()

	data := ReceiptData{
		LoanID: loanID.String(),
		Type:   receiptDataType,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseLoanReceipt(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, loanID, parsedID)
}

func TestReceiptService_ParseLoanReceipt_InvalidJSON(t *testing.T) {
	service := newReceiptService(256, "M")

	_, err := service.ParseLoanReceipt("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal receipt data")
}

func TestReceiptService_ParseLoanReceipt_InvalidType(t *testing.T) {
	service := newReceiptService(256, "M")

	data := ReceiptData{
		LoanID: uuid.New().String(),
		Type:   "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseLoanReceipt(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid receipt type")
}

func TestReceiptService_ParseLoanReceipt_InvalidUUID(t *testing.T) {
	service := newReceiptService(256, "M")

	data := ReceiptData{
		LoanID: "not-a-valid-uuid",
		Type:   receiptDataType,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseLoanReceipt(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse loan ID")
}
