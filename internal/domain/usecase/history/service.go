package history

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/coherence"
	"github.com/google/uuid"
)

// Service implements the history use case on top of the cache coherence layer
type Service struct {
	uow    persistence.UnitOfWork
	cache  *coherence.Layer
	logger coreport.Logger
}

// NewService creates a new history service
func NewService(uow persistence.UnitOfWork, cache *coherence.Layer, logger coreport.Logger) *Service {
	return &Service{
		uow:    uow,
		cache:  cache,
		logger: logger,
	}
}

// GetHistory returns one page of the requester's transactions, newest first.
// The filter is scoped to the requester whatever UserID it carries, so an
// account filter on a foreign account yields an empty page.
func (s *Service) GetHistory(
	ctx context.Context,
	requester entity.Requester,
	filter entity.HistoryFilter,
) (*entity.HistoryPage, bool, error) {
	if requester.UserID == uuid.Nil {
		return nil, false, errs.ErrUnauthorized
	}

	filter.UserID = requester.UserID
	filter = filter.Normalize()

	page, cached, err := coherence.GetOrPopulate(ctx, s.cache, coherence.HistoryKey(filter), 0,
		func(ctx context.Context) (*entity.HistoryPage, error) {
			return s.uow.GetTransactionRepository(ctx).Search(ctx, filter)
		})
	if err != nil {
		s.logger.Error("Failed to load transaction history", map[string]any{
			"user_id":    requester.UserID.String(),
			"request_id": requester.RequestID,
			"error":      err.Error(),
		})
		return nil, false, err
	}

	return page, cached, nil
}

// GetTransaction returns one transaction whose source or destination account the requester owns
func (s *Service) GetTransaction(
	ctx context.Context,
	requester entity.Requester,
	id uuid.UUID,
) (*entity.TransactionView, error) {
	if requester.UserID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	return s.uow.GetTransactionRepository(ctx).GetViewForUser(ctx, id, requester.UserID)
}
