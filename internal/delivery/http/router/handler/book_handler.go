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

// BookHandler holds dependencies for catalog and inventory handlers.
type BookHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(inventoryUC usecase.InventoryUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		inventoryUC: inventoryUC,
		logger:      logger,
	}
}

type registerBookRequest struct {
	ISBN        string `json:"isbn" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	TotalCopies int    `json:"total_copies" validate:"required,gt=0"`
}

// RegisterBook adds a new title to the catalog.
func (h *BookHandler) RegisterBook(c echo.Context) error {
	var req registerBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.inventoryUC.RegisterBook(c.Request().Context(), usecase.RegisterBookInput{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book, "Book registered successfully")
}

type adjustCopiesRequest struct {
	TotalCopies int `json:"total_copies" validate:"required,gt=0"`
}

// AdjustTotalCopies changes a book's total copy count.
func (h *BookHandler) AdjustTotalCopies(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	var req adjustCopiesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid copy adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.inventoryUC.AdjustTotalCopies(c.Request().Context(), bookID, req.TotalCopies)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Copy count adjusted successfully")
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SetBookActive enables or disables a book for new checkouts.
func (h *BookHandler) SetBookActive(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.inventoryUC.SetBookActive(c.Request().Context(), bookID, *req.Active)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book state updated successfully")
}

// GetBook retrieves a book by ID.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("bookID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	book, err := h.inventoryUC.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book retrieved successfully")
}
