package handler

import (
	"log/slog"
	"net/http"

	"circulate/internal/delivery/http/response"
	"circulate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PatronHandler holds dependencies for borrower membership handlers.
type PatronHandler struct {
	patronUC usecase.PatronUsecase
	logger   *slog.Logger
}

// NewPatronHandler is the constructor for PatronHandler, injected by Fx.
func NewPatronHandler(patronUC usecase.PatronUsecase, logger *slog.Logger) *PatronHandler {
	return &PatronHandler{
		patronUC: patronUC,
		logger:   logger,
	}
}

type registerPatronRequest struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	NotificationToken string `json:"notification_token"`
}

// RegisterPatron creates a new borrower account.
func (h *PatronHandler) RegisterPatron(c echo.Context) error {
	var req registerPatronRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patron input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patron, err := h.patronUC.RegisterPatron(c.Request().Context(), usecase.RegisterPatronInput{
		Name:              req.Name,
		Email:             req.Email,
		NotificationToken: req.NotificationToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, patron, "Patron registered successfully")
}

// GetPatron retrieves a patron by ID.
func (h *PatronHandler) GetPatron(c echo.Context) error {
	patronID, err := uuid.Parse(c.Param("patronID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patron ID")
	}

	patron, err := h.patronUC.GetPatron(c.Request().Context(), patronID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patron, "Patron retrieved successfully")
}

type setNotificationTokenRequest struct {
	// An empty token clears the patron's push registration.
	NotificationToken string `json:"notification_token"`
}

// SetNotificationToken replaces the patron's push token for overdue notices.
func (h *PatronHandler) SetNotificationToken(c echo.Context) error {
	patronID, err := uuid.Parse(c.Param("patronID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid patron ID")
	}

	var req setNotificationTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := h.patronUC.SetNotificationToken(c.Request().Context(), patronID, req.NotificationToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification token updated successfully")
}
