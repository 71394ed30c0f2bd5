package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferCommand is a validated request to move Amount minor units
type TransferCommand struct {
	FromAccountID   uuid.UUID
	ToAccountNumber string
	Amount          int64
	Description     string
}

// TransferResult is returned once a transfer has been committed
type TransferResult struct {
	TransactionID   uuid.UUID
	ReferenceNumber string
	Amount          int64
	Currency        string
	BalanceAfter    int64
	Timestamp       time.Time
}
