package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionRepository defines methods to store and query ledger entries
type TransactionRepository interface {
	// Create saves a new ledger entry. Entries are never updated afterwards.
	//
	// Possible errors:
	// - ErrDuplicateReference: If the reference number is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetViewForUser retrieves one transaction with counterparties resolved,
	// provided the user owns the source or the destination account
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist or isn't visible to the user
	// - ErrDatabaseConnection: If database connection fails
	GetViewForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.TransactionView, error)

	// Search returns one page of the user's history, most recent first, and the total match count
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Search(ctx context.Context, filter entity.HistoryFilter) (*entity.HistoryPage, error)
}
