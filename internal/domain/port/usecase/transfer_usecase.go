package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
)

// TransferUseCase moves funds between two accounts
type TransferUseCase interface {
	// Transfer debits the requester's source account and credits the destination
	// in one unit of work, then runs the post-commit side effects
	Transfer(ctx context.Context, requester entity.Requester, cmd entity.TransferCommand) (*entity.TransferResult, error)
}
