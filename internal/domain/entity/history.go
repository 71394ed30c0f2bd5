package entity

import "github.com/google/uuid"

// History paging bounds
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)

// HistoryFilter selects a page of a user's transaction history.
// A nil AccountID and an empty Type mean "all".
type HistoryFilter struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	Type      TransactionType
	Limit     int
	Offset    int
}

// Normalize applies the paging defaults and bounds
func (f HistoryFilter) Normalize() HistoryFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultHistoryLimit
	}
	if f.Limit > MaxHistoryLimit {
		f.Limit = MaxHistoryLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// HistoryPage is one page of history plus the total number of matching rows
type HistoryPage struct {
	Transactions []TransactionView
	Limit        int
	Offset       int
	Total        int64
}
