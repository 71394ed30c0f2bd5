package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// HistoryUseCase serves the read side of the ledger
type HistoryUseCase interface {
	// GetHistory returns one page of the requester's transactions and whether it came from cache
	GetHistory(ctx context.Context, requester entity.Requester, filter entity.HistoryFilter) (*entity.HistoryPage, bool, error)

	// GetTransaction returns one transaction visible to the requester
	GetTransaction(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.TransactionView, error)
}
