package transfer

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// BalanceMutator applies debit/credit pairs to account rows inside an open unit of work.
// Row locks are always taken in ascending account id order, whatever the
// direction of the transfer, so opposite transfers between the same pair of
// accounts cannot wait on each other in a cycle.
type BalanceMutator struct {
	logger coreport.Logger
}

// NewBalanceMutator creates a new BalanceMutator
func NewBalanceMutator(logger coreport.Logger) *BalanceMutator {
	return &BalanceMutator{logger: logger}
}

// lockOrder de-duplicates ids and sorts them ascending
func lockOrder(ids []uuid.UUID) []uuid.UUID {
	ordered := slices.Clone(ids)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return slices.Compact(ordered)
}

// Lock takes the row locks of every given account in ascending id order and
// returns the freshly read rows keyed by id.
func (m *BalanceMutator) Lock(
	ctx context.Context,
	accounts persistence.AccountRepository,
	ids ...uuid.UUID,
) (map[uuid.UUID]*entity.Account, error) {
	locked := make(map[uuid.UUID]*entity.Account, len(ids))

	for _, id := range lockOrder(ids) {
		account, err := accounts.LockByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lock account %s: %w", id, err)
		}
		locked[id] = account
	}

	m.logger.Debug("Account rows locked", map[string]any{
		"account_count": len(locked),
	})
	return locked, nil
}

// Move locks both accounts and moves amount from source to destination.
// It returns the resulting source balance.
func (m *BalanceMutator) Move(
	ctx context.Context,
	accounts persistence.AccountRepository,
	sourceID uuid.UUID,
	destinationID uuid.UUID,
	amount int64,
) (int64, error) {
	if sourceID == destinationID {
		return 0, errs.ErrSelfTransferNotAllowed
	}

	locked, err := m.Lock(ctx, accounts, sourceID, destinationID)
	if err != nil {
		return 0, err
	}

	return m.MoveLocked(ctx, accounts, locked[sourceID], locked[destinationID], amount)
}

// MoveLocked moves amount between two rows the caller already locked through Lock.
// Both changes are relative updates evaluated by the store; the debit is also
// guarded by the store against the overdraft limit.
func (m *BalanceMutator) MoveLocked(
	ctx context.Context,
	accounts persistence.AccountRepository,
	source *entity.Account,
	destination *entity.Account,
	amount int64,
) (int64, error) {
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	if err := source.CheckDebit(amount); err != nil {
		return 0, err
	}

	balanceAfter, err := accounts.ApplyDelta(ctx, source.ID, -amount)
	if err != nil {
		return 0, fmt.Errorf("debit account %s: %w", source.ID, err)
	}

	if _, err := accounts.ApplyDelta(ctx, destination.ID, amount); err != nil {
		return 0, fmt.Errorf("credit account %s: %w", destination.ID, err)
	}

	m.logger.Debug("Balances moved", map[string]any{
		"from_account_id": source.ID.String(),
		"to_account_id":   destination.ID.String(),
		"amount":          entity.FormatAmount(amount),
		"balance_after":   entity.FormatAmount(balanceAfter),
	})
	return balanceAfter, nil
}
