package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating operations across
// repositories inside one all-or-nothing database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context.
	// Row lock waits inside the transaction are bounded by the configured lock timeout.
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	// (or to the plain connection when ctx carries none)
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	// (or to the plain connection when ctx carries none)
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
