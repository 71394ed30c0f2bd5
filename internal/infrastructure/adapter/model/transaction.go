package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for committed ledger entries
type Transaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReferenceNumber string     `gorm:"size:40;not null;uniqueIndex:idx_transactions_reference_number"`
	FromAccountID   *uuid.UUID `gorm:"type:uuid;index"`
	ToAccountID     *uuid.UUID `gorm:"type:uuid;index"`
	TransactionType string     `gorm:"size:20;not null"`
	Amount          int64      `gorm:"not null"` // minor units
	Currency        string     `gorm:"size:3;not null"`
	Status          string     `gorm:"size:20;not null"`
	Description     string     `gorm:"size:255"`
	BalanceAfter    int64      `gorm:"not null"`
	CreatedAt       time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionView is the scan target of the history and detail queries
type TransactionView struct {
	Transaction
	FromAccountNumber *string
	ToAccountNumber   *string
	FromAccountHolder *string
	ToAccountHolder   *string
}
