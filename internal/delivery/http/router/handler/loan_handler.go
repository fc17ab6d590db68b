// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"circulate/internal/delivery/http/middleware"
	"circulate/internal/delivery/http/response"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoanHandler holds dependencies for circulation-related handlers.
type LoanHandler struct {
	circulationUC usecase.CirculationUsecase
	eligibilityUC usecase.EligibilityUsecase
	logger        *slog.Logger
}

// NewLoanHandler is the constructor for LoanHandler, injected by Fx.
func NewLoanHandler(circulationUC usecase.CirculationUsecase, eligibilityUC usecase.EligibilityUsecase, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{
		circulationUC: circulationUC,
		eligibilityUC: eligibilityUC,
		logger:        logger,
	}
}

type createLoanRequest struct {
	PatronID uuid.UUID  `json:"patron_id" validate:"required"`
	BookID   uuid.UUID  `json:"book_id" validate:"required"`
	DueAt    *time.Time `json:"due_at,omitempty"`
}

// CreateLoan handles the checkout request.
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid staff ID in token")
	}

	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.circulationUC.CreateLoan(c.Request().Context(), usecase.CreateLoanInput{
		PatronID: req.PatronID,
		BookID:   req.BookID,
		IssuedBy: staffID,
		DueAt:    req.DueAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, loan, "Loan created successfully")
}

// ReturnLoan handles the return of a borrowed copy.
func (h *LoanHandler) ReturnLoan(c echo.Context) error {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid staff ID in token")
	}

	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan ID")
	}

	output, err := h.circulationUC.ReturnLoan(c.Request().Context(), usecase.ReturnLoanInput{
		LoanID:     loanID,
		ReturnedBy: staffID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Loan returned successfully")
}

type renewLoanRequest struct {
	PatronID *uuid.UUID `json:"patron_id,omitempty"`
}

// RenewLoan handles the renewal of an active loan.
func (h *LoanHandler) RenewLoan(c echo.Context) error {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid staff ID in token")
	}

	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan ID")
	}

	var req renewLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid renewal input")
	}

	loan, err := h.circulationUC.RenewLoan(c.Request().Context(), usecase.RenewLoanInput{
		LoanID:    loanID,
		RenewedBy: staffID,
		PatronID:  req.PatronID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Loan renewed successfully")
}

type payFineRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// PayFine applies a payment against a loan's fine.
func (h *LoanHandler) PayFine(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan ID")
	}

	var req payFineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.circulationUC.PayFine(c.Request().Context(), usecase.PayFineInput{
		LoanID: loanID,
		Amount: req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Payment recorded successfully")
}

// MarkLost closes a loan as lost and writes the copy off the inventory.
func (h *LoanHandler) MarkLost(c echo.Context) error {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid staff ID in token")
	}

	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan ID")
	}

	loan, err := h.circulationUC.MarkLost(c.Request().Context(), usecase.MarkLostInput{
		LoanID:   loanID,
		MarkedBy: staffID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Loan marked as lost")
}

// SweepOverdue runs an overdue sweep over all past-due loans.
func (h *LoanHandler) SweepOverdue(c echo.Context) error {
	output, err := h.circulationUC.SweepOverdue(c.Request().Context(), time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Overdue sweep completed")
}

// GetLoan retrieves a loan with its renewal history.
func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan ID")
	}

	loan, err := h.circulationUC.GetLoan(c.Request().Context(), loanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Loan retrieved successfully")
}

// ListPatronLoans retrieves a patron's borrowing history, newest first.
func (h *LoanHandler) ListPatronLoans(c echo.Context) error {
	patronID, err := uuid.Parse(c.Param("patronID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patron ID")
	}

	loans, err := h.circulationUC.ListPatronLoans(c.Request().Context(), patronID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loans, "Loans retrieved successfully")
}

// GetLoanReceipt renders the loan's QR receipt as a PNG.
func (h *LoanHandler) GetLoanReceipt(c echo.Context) error {
	loanID, err := uuid.Parse(c.Param("loanID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan ID")
	}

	pngBytes, err := h.circulationUC.GetLoanReceipt(c.Request().Context(), loanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

type resolveReceiptRequest struct {
	Data string `json:"data" validate:"required"`
}

// ResolveLoanReceipt resolves scanned receipt data back to its loan.
func (h *LoanHandler) ResolveLoanReceipt(c echo.Context) error {
	var req resolveReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.circulationUC.ResolveLoanReceipt(c.Request().Context(), req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loan, "Receipt resolved successfully")
}

// CheckEligibility reports whether a patron may borrow a book right now.
func (h *LoanHandler) CheckEligibility(c echo.Context) error {
	patronID, err := uuid.Parse(c.Param("patronID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patron ID")
	}

	bookID, err := uuid.Parse(c.Param("bookID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	output, err := h.eligibilityUC.CheckEligibility(c.Request().Context(), patronID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Eligibility evaluated")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
