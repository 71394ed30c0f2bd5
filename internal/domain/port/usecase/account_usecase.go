package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// AccountUseCase exposes the requester's accounts
type AccountUseCase interface {
	// ListAccounts returns the requester's open accounts and whether they came from cache
	ListAccounts(ctx context.Context, requester entity.Requester) ([]*entity.Account, bool, error)

	// GetAccount returns one account owned by the requester
	GetAccount(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.Account, error)

	// GetBalance returns an authoritative, uncached read of one account
	GetBalance(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.Account, error)
}
