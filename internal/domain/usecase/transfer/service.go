package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/audit"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/notify"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// DefaultSideEffectTimeout bounds each batch of post-commit side effects
const DefaultSideEffectTimeout = 3 * time.Second

// Config tunes the transfer orchestrator
type Config struct {
	Retry             RetryPolicy
	SideEffectTimeout time.Duration
}

// Service orchestrates funds transfers: validation, the atomic ledger
// mutation, and the post-commit side effects
type Service struct {
	uow          persistence.UnitOfWork
	mutator      *BalanceMutator
	validator    *TransferValidator
	references   coreport.ReferenceGenerator
	cache        cache.Invalidator
	auditSink    audit.Sink
	publisher    notify.Publisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// committedTransfer is what the side effects need to know about a committed transfer
type committedTransfer struct {
	result           *entity.TransferResult
	sourceOwner      uuid.UUID
	destinationOwner uuid.UUID
}

// NewService creates a new transfer orchestrator
func NewService(
	uow persistence.UnitOfWork,
	references coreport.ReferenceGenerator,
	cacheInvalidator cache.Invalidator,
	auditSink audit.Sink,
	publisher notify.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.SideEffectTimeout <= 0 {
		config.SideEffectTimeout = DefaultSideEffectTimeout
	}

	return &Service{
		uow:          uow,
		mutator:      NewBalanceMutator(logger),
		validator:    NewTransferValidator(),
		references:   references,
		cache:        cacheInvalidator,
		auditSink:    auditSink,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Transfer moves cmd.Amount from the requester's source account to the account
// identified by cmd.ToAccountNumber. The client either gets a committed result
// or a rejection; side-effect failures never change that outcome.
func (s *Service) Transfer(
	ctx context.Context,
	requester entity.Requester,
	cmd entity.TransferCommand,
) (*entity.TransferResult, error) {
	if err := s.validator.Validate(requester, cmd); err != nil {
		s.reportFailure(ctx, requester, cmd, err, 0)
		return nil, err
	}

	var committed *committedTransfer
	attempts, err := withRetry(ctx, s.config.Retry, s.logger, func(ctx context.Context) error {
		outcome, err := s.executeTransfer(ctx, requester, cmd)
		if err != nil {
			return err
		}
		committed = outcome
		return nil
	})
	if err != nil {
		s.reportFailure(ctx, requester, cmd, err, attempts)
		return nil, err
	}

	s.logger.Info("Transfer completed", map[string]any{
		"user_id":          requester.UserID.String(),
		"request_id":       requester.RequestID,
		"reference_number": committed.result.ReferenceNumber,
		"amount":           entity.FormatAmount(committed.result.Amount),
		"attempts":         attempts,
	})

	s.afterCommit(ctx, requester, cmd, committed)

	return committed.result, nil
}

// executeTransfer runs one attempt of the transfer as a single unit of work
func (s *Service) executeTransfer(
	ctx context.Context,
	requester entity.Requester,
	cmd entity.TransferCommand,
) (_ *committedTransfer, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Warn("Rollback after failed transfer attempt failed", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
	}()

	accounts := s.uow.GetAccountRepository(txCtx)

	source, err := accounts.GetOwnedByID(txCtx, cmd.FromAccountID, requester.UserID)
	if errors.Is(err, errs.ErrAccountNotFound) || (err == nil && source.IsClosed()) {
		return nil, errs.ErrSourceAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	destination, err := accounts.GetByNumber(txCtx, cmd.ToAccountNumber)
	if err != nil && !errors.Is(err, errs.ErrAccountNotFound) {
		return nil, err
	}

	lockIDs := []uuid.UUID{source.ID}
	if destination != nil {
		if destination.ID == source.ID {
			return nil, errs.ErrSelfTransferNotAllowed
		}
		lockIDs = append(lockIDs, destination.ID)
	}

	locked, err := s.mutator.Lock(txCtx, accounts, lockIDs...)
	if err != nil {
		return nil, err
	}

	source = locked[source.ID]
	if err = source.CheckDebit(cmd.Amount); err != nil {
		return nil, err
	}

	if destination == nil || locked[destination.ID].IsClosed() {
		return nil, errs.ErrDestinationAccountNotFound
	}
	destination = locked[destination.ID]

	if source.IsFrozen() || destination.IsFrozen() {
		return nil, errs.ErrAccountFrozen
	}

	if source.CurrencyCode() != destination.CurrencyCode() {
		return nil, errs.ErrCurrencyMismatch
	}

	balanceAfter, err := s.mutator.MoveLocked(txCtx, accounts, source, destination, cmd.Amount)
	if err != nil {
		return nil, err
	}

	reference, err := s.references.Next()
	if err != nil {
		return nil, err
	}

	record := entity.NewTransferTransaction(
		source, destination, cmd.Amount, cmd.Description, reference, balanceAfter, s.timeProvider,
	)
	if err = s.uow.GetTransactionRepository(txCtx).Create(txCtx, record); err != nil {
		return nil, err
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return &committedTransfer{
		result: &entity.TransferResult{
			TransactionID:   record.ID,
			ReferenceNumber: record.ReferenceNumber,
			Amount:          record.Amount,
			Currency:        record.Currency,
			BalanceAfter:    record.BalanceAfter,
			Timestamp:       record.CreatedAt,
		},
		sourceOwner:      source.UserID,
		destinationOwner: destination.UserID,
	}, nil
}
