package transfer

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// sideEffectContext detaches from the request so a client disconnect cannot
// cut the audit trail short, while still bounding how long side effects run
func (s *Service) sideEffectContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return s.timeProvider.WithTimeout(context.WithoutCancel(ctx), coreport.Duration(s.config.SideEffectTimeout))
}

// afterCommit runs the post-commit side effects in order. Cache invalidation
// completes before Transfer returns so the requester reads their own write.
func (s *Service) afterCommit(
	ctx context.Context,
	requester entity.Requester,
	cmd entity.TransferCommand,
	committed *committedTransfer,
) {
	sideCtx, cancel := s.sideEffectContext(ctx)
	defer cancel()

	s.invalidate(sideCtx, committed.sourceOwner)
	if committed.destinationOwner != committed.sourceOwner {
		s.invalidate(sideCtx, committed.destinationOwner)
	}

	s.recordAudit(sideCtx, entity.NewTransferAuditEntry(requester, cmd, committed.result, nil, s.timeProvider.Now()))

	s.publish(sideCtx, requester.UserID, entity.NewTransferEvent(committed.result, entity.DirectionSent))
	if committed.destinationOwner != requester.UserID {
		s.publish(sideCtx, committed.destinationOwner, entity.NewTransferEvent(committed.result, entity.DirectionReceived))
	}
}

// reportFailure logs a rejected or failed transfer and records it in the audit trail
func (s *Service) reportFailure(
	ctx context.Context,
	requester entity.Requester,
	cmd entity.TransferCommand,
	failure error,
	attempts int,
) {
	transferErr := &errs.TransferError{
		UserID:          requester.UserID.String(),
		FromAccountID:   cmd.FromAccountID.String(),
		ToAccountNumber: cmd.ToAccountNumber,
		Amount:          entity.FormatAmount(cmd.Amount),
		Attempts:        attempts,
		Err:             failure,
	}

	fields := transferErr.LogFields()
	fields["request_id"] = requester.RequestID
	if errs.IsBusinessError(failure) || errs.IsRetryable(failure) {
		s.logger.Warn("Transfer rejected", fields)
	} else {
		s.logger.Error("Transfer failed", fields)
	}

	sideCtx, cancel := s.sideEffectContext(ctx)
	defer cancel()

	s.recordAudit(sideCtx, entity.NewTransferAuditEntry(requester, cmd, nil, failure, s.timeProvider.Now()))
}

func (s *Service) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Error("Cache invalidation failed after transfer", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
	}
}

// recordAudit writes entry to the audit sink. When the sink fails, the full
// entry goes to the application log instead so it is never silently lost.
func (s *Service) recordAudit(ctx context.Context, entry entity.AuditEntry) {
	if err := s.auditSink.Record(ctx, entry); err != nil {
		fields := entry.LogFields()
		fields["audit_error"] = err.Error()
		s.logger.Error("Audit write failed, entry kept in application log", fields)
	}
}

func (s *Service) publish(ctx context.Context, userID uuid.UUID, event entity.TransferEvent) {
	if err := s.publisher.Publish(ctx, userID, event); err != nil {
		s.logger.Warn("Transfer notification not delivered", map[string]any{
			"user_id":          userID.String(),
			"reference_number": event.ReferenceNumber,
			"error":            err.Error(),
		})
	}
}
