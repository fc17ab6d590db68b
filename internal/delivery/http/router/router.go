// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"circulate/internal/delivery/http/middleware"
	"circulate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LoanHandler    *handler.LoanHandler
	BookHandler    *handler.BookHandler
	PatronHandler  *handler.PatronHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	loanHandler    *handler.LoanHandler
	bookHandler    *handler.BookHandler
	patronHandler  *handler.PatronHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		loanHandler:    params.LoanHandler,
		bookHandler:    params.BookHandler,
		patronHandler:  params.PatronHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register/staff", r.authHandler.RegisterStaff)
	}

	// Catalog routes; mutations require a staff token
	bookGroup := e.Group("/books")
	{
		bookGroup.GET("/:bookID", r.bookHandler.GetBook)

		staffBooks := bookGroup.Group("", r.authMiddleware.Authenticate)
		staffBooks.POST("", r.bookHandler.RegisterBook)
		staffBooks.PATCH("/:bookID/copies", r.bookHandler.AdjustTotalCopies)
		staffBooks.PATCH("/:bookID/active", r.bookHandler.SetBookActive)
	}

	// Circulation routes; all require a staff token
	loanGroup := e.Group("/loans", r.authMiddleware.Authenticate)
	{
		loanGroup.POST("", r.loanHandler.CreateLoan)
		loanGroup.POST("/sweep", r.loanHandler.SweepOverdue)
		loanGroup.POST("/receipt/resolve", r.loanHandler.ResolveLoanReceipt)
		loanGroup.GET("/:loanID", r.loanHandler.GetLoan)
		loanGroup.GET("/:loanID/receipt", r.loanHandler.GetLoanReceipt)
		loanGroup.POST("/:loanID/return", r.loanHandler.ReturnLoan)
		loanGroup.POST("/:loanID/renew", r.loanHandler.RenewLoan)
		loanGroup.POST("/:loanID/payments", r.loanHandler.PayFine)
		loanGroup.POST("/:loanID/lost", r.loanHandler.MarkLost)
	}

	// Patron routes; staff manage membership and look up history at the desk
	patronGroup := e.Group("/patrons", r.authMiddleware.Authenticate)
	{
		patronGroup.POST("", r.patronHandler.RegisterPatron)
		patronGroup.GET("/:patronID", r.patronHandler.GetPatron)
		patronGroup.PUT("/:patronID/notification-token", r.patronHandler.SetNotificationToken)
		patronGroup.GET("/:patronID/loans", r.loanHandler.ListPatronLoans)
		patronGroup.GET("/:patronID/eligibility/:bookID", r.loanHandler.CheckEligibility)
	}
}
