package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// The use case layer drives multi-entity updates (reserve a copy + insert a
// loan, or close a loan + release a copy + settle fines) through it without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction, so no intermediate state
	// (a reserved copy without a loan, or vice versa) can survive a failure.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// NewBookRepository returns a BookRepository bound to the current transaction.
	NewBookRepository() BookRepository

	// NewPatronRepository returns a PatronRepository bound to the current transaction.
	NewPatronRepository() PatronRepository

	// NewLoanRepository returns a LoanRepository bound to the current transaction.
	NewLoanRepository() LoanRepository
}
