package account

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/coherence"
	"github.com/google/uuid"
)

// Service implements the account use case
type Service struct {
	uow    persistence.UnitOfWork
	cache  *coherence.Layer
	logger coreport.Logger
}

// NewService creates a new account service
func NewService(uow persistence.UnitOfWork, cache *coherence.Layer, logger coreport.Logger) *Service {
	return &Service{
		uow:    uow,
		cache:  cache,
		logger: logger,
	}
}

// ListAccounts returns the requester's open accounts, served from cache when possible
func (s *Service) ListAccounts(ctx context.Context, requester entity.Requester) ([]*entity.Account, bool, error) {
	if requester.UserID == uuid.Nil {
		return nil, false, errs.ErrUnauthorized
	}

	accounts, cached, err := coherence.GetOrPopulate(ctx, s.cache, coherence.AccountsKey(requester.UserID), 0,
		func(ctx context.Context) ([]*entity.Account, error) {
			return s.uow.GetAccountRepository(ctx).ListByUser(ctx, requester.UserID)
		})
	if err != nil {
		s.logger.Error("Failed to list accounts", map[string]any{
			"user_id": requester.UserID.String(),
			"error":   err.Error(),
		})
		return nil, false, err
	}

	return accounts, cached, nil
}

// GetAccount returns one account owned by the requester
func (s *Service) GetAccount(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.Account, error) {
	if requester.UserID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	return s.uow.GetAccountRepository(ctx).GetOwnedByID(ctx, id, requester.UserID)
}

// GetBalance reads the balance straight from the store. It never goes through the cache.
func (s *Service) GetBalance(ctx context.Context, requester entity.Requester, id uuid.UUID) (*entity.Account, error) {
	account, err := s.GetAccount(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Balance read", map[string]any{
		"user_id":    requester.UserID.String(),
		"account_id": id.String(),
		"balance":    entity.FormatAmount(account.Balance),
	})
	return account, nil
}
