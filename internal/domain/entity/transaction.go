package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	tport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// TransactionType represents the kind of ledger movement
type TransactionType string

// Transaction types
const (
	TypeTransfer   TransactionType = "transfer"
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// MaxDescriptionLength bounds the free-text description of a transaction
const MaxDescriptionLength = 255

// Transaction is an immutable ledger entry.
// Amount and BalanceAfter are held in minor units; BalanceAfter is the
// source account balance right after the debit.
type Transaction struct {
	ID              uuid.UUID
	ReferenceNumber string
	FromAccountID   *uuid.UUID
	ToAccountID     *uuid.UUID
	Type            TransactionType
	Amount          int64
	Currency        string
	Status          TransactionStatus
	Description     string
	BalanceAfter    int64
	CreatedAt       time.Time
}

// TransactionView is a transaction with both counterparties resolved for display
type TransactionView struct {
	Transaction
	FromAccountNumber string
	ToAccountNumber   string
	FromAccountHolder string
	ToAccountHolder   string
}

// NewTransferTransaction builds the completed ledger entry for a transfer between two locked accounts
func NewTransferTransaction(
	source *Account,
	destination *Account,
	amount int64,
	description string,
	referenceNumber string,
	balanceAfter int64,
	timeProvider tport.TimeProvider,
) *Transaction {
	fromID := source.ID
	toID := destination.ID

	return &Transaction{
		ID:              uuid.New(),
		ReferenceNumber: referenceNumber,
		FromAccountID:   &fromID,
		ToAccountID:     &toID,
		Type:            TypeTransfer,
		Amount:          amount,
		Currency:        source.CurrencyCode(),
		Status:          StatusCompleted,
		Description:     description,
		BalanceAfter:    balanceAfter,
		CreatedAt:       timeProvider.Now().UTC(),
	}
}

// IsCompleted reports whether the entry is a committed ledger movement
func (t *Transaction) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Involves reports whether accountID is on either side of the transaction
func (t *Transaction) Involves(accountID uuid.UUID) bool {
	return (t.FromAccountID != nil && *t.FromAccountID == accountID) ||
		(t.ToAccountID != nil && *t.ToAccountID == accountID)
}

// ParseTransactionType validates a type filter. Empty and "all" mean no filter.
func ParseTransactionType(value string) (TransactionType, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "", "all":
		return "", nil
	case string(TypeTransfer), string(TypeDeposit), string(TypeWithdrawal):
		return TransactionType(v), nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, value)
	}
}
