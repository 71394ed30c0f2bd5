package repository

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	lockAccountSQL = `SELECT * FROM accounts WHERE id = ? FOR UPDATE`

	// applyDeltaSQL is a relative update: the store computes the new balance
	// from the row it holds, and refuses to cross the overdraft floor.
	applyDeltaSQL = `UPDATE accounts SET balance = balance + ?, updated_at = ? ` +
		`WHERE id = ? AND balance + ? >= -overdraft_limit RETURNING balance`
)

// getOperationType returns "credit" for positive changes and "debit" for negative ones
func getOperationType(delta int64) string {
	if delta >= 0 {
		return "credit"
	}
	return "debit"
}

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// accountModelToEntity converts an account model to an entity
func accountModelToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:             m.ID,
		AccountNumber:  m.AccountNumber,
		UserID:         m.UserID,
		AccountType:    m.AccountType,
		Balance:        m.Balance,
		Currency:       m.Currency,
		Status:         entity.AccountStatus(m.Status),
		OverdraftLimit: m.OverdraftLimit,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// handleDatabaseError logs and maps a failed account query
func (r *AccountRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Map(err, errs.ErrAccountNotFound)
	if errs.IsNotFoundError(mapped) {
		return mapped
	}

	fields["error"] = err.Error()
	fields["operation"] = operation
	if errs.IsRetryable(mapped) {
		r.logger.Warn("Account query hit lock contention", fields)
	} else {
		r.logger.Error("Database error on accounts", fields)
	}
	return mapped
}

// GetOwnedByID retrieves an account by ID only if userID owns it
func (r *AccountRepository) GetOwnedByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get owned account", result.Error, map[string]any{
			"account_id": id.String(),
			"user_id":    userID.String(),
		})
	}

	return accountModelToEntity(&m), nil
}

// GetByNumber retrieves an account by its account number without locking it
func (r *AccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).First(&m)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get account by number", result.Error, map[string]any{
			"account_number": accountNumber,
		})
	}

	return accountModelToEntity(&m), nil
}

// LockByID re-reads the row under an exclusive row lock held until the unit of work ends
func (r *AccountRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).Raw(lockAccountSQL, id).Scan(&m)
	if result.Error != nil {
		return nil, r.handleDatabaseError("lock account", result.Error, map[string]any{
			"account_id": id.String(),
		})
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrAccountNotFound
	}

	return accountModelToEntity(&m), nil
}

// ApplyDelta adds delta to the balance and returns the resulting balance
func (r *AccountRepository) ApplyDelta(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	var balance int64
	result := r.db.WithContext(ctx).
		Raw(applyDeltaSQL, delta, r.timeProvider.Now().UTC(), id, delta).
		Scan(&balance)
	if result.Error != nil {
		return 0, r.handleDatabaseError("apply balance delta", result.Error, map[string]any{
			"account_id":     id.String(),
			"operation_type": getOperationType(delta),
		})
	}

	if result.RowsAffected == 0 {
		if delta < 0 {
			r.logger.Warn("Debit refused by overdraft guard", map[string]any{
				"account_id": id.String(),
				"amount":     entity.FormatAmount(-delta),
			})
			return 0, errs.ErrInsufficientBalance
		}
		return 0, errs.ErrAccountNotFound
	}

	r.logger.Debug("Balance delta applied", map[string]any{
		"account_id":     id.String(),
		"operation_type": getOperationType(delta),
		"delta":          entity.FormatAmount(delta),
		"balance":        entity.FormatAmount(balance),
	})
	return balance, nil
}

// ListByUser returns all non-closed accounts of a user, newest first
func (r *AccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var models []model.Account
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, string(entity.AccountClosed)).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list accounts", result.Error, map[string]any{
			"user_id": userID.String(),
		})
	}

	accounts := make([]*entity.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, accountModelToEntity(&models[i]))
	}
	return accounts, nil
}
