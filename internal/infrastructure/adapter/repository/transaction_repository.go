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

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:              transaction.ID,
		ReferenceNumber: transaction.ReferenceNumber,
		FromAccountID:   transaction.FromAccountID,
		ToAccountID:     transaction.ToAccountID,
		TransactionType: string(transaction.Type),
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Status:          string(transaction.Status),
		Description:     transaction.Description,
		BalanceAfter:    transaction.BalanceAfter,
		CreatedAt:       transaction.CreatedAt,
	}
}

// viewToEntity converts a joined row to a transaction view
func viewToEntity(m *model.TransactionView) entity.TransactionView {
	return entity.TransactionView{
		Transaction: entity.Transaction{
			ID:              m.ID,
			ReferenceNumber: m.ReferenceNumber,
			FromAccountID:   m.FromAccountID,
			ToAccountID:     m.ToAccountID,
			Type:            entity.TransactionType(m.TransactionType),
			Amount:          m.Amount,
			Currency:        m.Currency,
			Status:          entity.TransactionStatus(m.Status),
			Description:     m.Description,
			BalanceAfter:    m.BalanceAfter,
			CreatedAt:       m.CreatedAt,
		},
		FromAccountNumber: deref(m.FromAccountNumber),
		ToAccountNumber:   deref(m.ToAccountNumber),
		FromAccountHolder: deref(m.FromAccountHolder),
		ToAccountHolder:   deref(m.ToAccountHolder),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create saves a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		mapped := r.errorClassifier.Map(result.Error, nil)
		fields := map[string]any{
			"reference_number": transaction.ReferenceNumber,
			"error":            result.Error.Error(),
		}
		if errs.IsRetryable(mapped) {
			r.logger.Warn("Ledger entry insert conflicted", fields)
		} else {
			r.logger.Error("Failed to create ledger entry", fields)
		}
		return mapped
	}

	r.logger.Debug("Ledger entry created", map[string]any{
		"transaction_id":   transaction.ID.String(),
		"reference_number": transaction.ReferenceNumber,
	})
	return nil
}

// GetViewForUser retrieves one transaction visible to userID with counterparties resolved
func (r *TransactionRepository) GetViewForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.TransactionView, error) {
	var row model.TransactionView
	result := r.db.WithContext(ctx).Raw(transactionByIDQuery(), id, userID, userID).Scan(&row)
	if result.Error != nil {
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id.String(),
			"error":          result.Error.Error(),
		})
		return nil, r.errorClassifier.Map(result.Error, errs.ErrTransactionNotFound)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrTransactionNotFound
	}

	view := viewToEntity(&row)
	return &view, nil
}

// Search returns one page of the user's history, most recent first
func (r *TransactionRepository) Search(ctx context.Context, filter entity.HistoryFilter) (*entity.HistoryPage, error) {
	query := NewHistoryQuery(filter)

	var total int64
	countSQL, countArgs := query.Count()
	if err := r.db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		r.logger.Error("Failed to count transaction history", map[string]any{
			"user_id": filter.UserID.String(),
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.Map(err, nil)
	}

	page := &entity.HistoryPage{
		Transactions: []entity.TransactionView{},
		Limit:        filter.Limit,
		Offset:       filter.Offset,
		Total:        total,
	}
	if total == 0 {
		return page, nil
	}

	var rows []model.TransactionView
	pageSQL, pageArgs := query.Build()
	if err := r.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Scan(&rows).Error; err != nil {
		r.logger.Error("Failed to load transaction history", map[string]any{
			"user_id": filter.UserID.String(),
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.Map(err, nil)
	}

	for i := range rows {
		page.Transactions = append(page.Transactions, viewToEntity(&rows[i]))
	}
	return page, nil
}
