package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// AccountRepository defines the ledger operations on account rows
type AccountRepository interface {
	// GetOwnedByID retrieves an account by ID only if userID owns it
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account with that ID belongs to the user
	// - ErrDatabaseConnection: If database connection fails
	GetOwnedByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Account, error)

	// GetByNumber retrieves an account by its external account number without locking it
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account carries the number
	// - ErrDatabaseConnection: If database connection fails
	GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error)

	// LockByID re-reads an account row holding a row-level write lock until the
	// surrounding unit of work ends. Must run inside a unit of work.
	//
	// Possible errors:
	// - ErrAccountNotFound: If the row doesn't exist
	// - ErrLockTimeout: If the lock wasn't granted within the configured wait
	// - ErrConcurrentUpdate: If the store aborted the statement on deadlock
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ApplyDelta adds delta minor units to the balance as a relative update and
	// returns the resulting balance. The update is refused when it would take the
	// balance below -overdraft_limit.
	//
	// Possible errors:
	// - ErrInsufficientBalance: If the overdraft guard rejected the update
	// - ErrAccountNotFound: If the row doesn't exist
	// - ErrLockTimeout / ErrConcurrentUpdate: On lock contention
	ApplyDelta(ctx context.Context, id uuid.UUID, delta int64) (int64, error)

	// ListByUser returns all non-closed accounts of a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)
}
