package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/google/uuid"
)

// AccountStatus defines the lifecycle state of an account
type AccountStatus string

// AccountStatus constants
const (
	AccountActive AccountStatus = "active"
	AccountFrozen AccountStatus = "frozen"
	AccountClosed AccountStatus = "closed"
)

// DefaultCurrency is used when an account carries no currency code
const DefaultCurrency = "USD"

// Account is a ledger account owned by a single user.
// Balance and OverdraftLimit are held in minor units.
type Account struct {
	ID             uuid.UUID
	AccountNumber  string
	UserID         uuid.UUID
	AccountType    string
	Balance        int64
	Currency       string
	Status         AccountStatus
	OverdraftLimit int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsClosed reports whether the account has been closed
func (a *Account) IsClosed() bool {
	return a.Status == AccountClosed
}

// IsFrozen reports whether the account is frozen
func (a *Account) IsFrozen() bool {
	return a.Status == AccountFrozen
}

// AvailableFunds is the balance plus the overdraft allowance
func (a *Account) AvailableFunds() int64 {
	return a.Balance + a.OverdraftLimit
}

// CanDebit reports whether debiting amount keeps balance >= -overdraft_limit
func (a *Account) CanDebit(amount int64) bool {
	return amount <= a.AvailableFunds()
}

// CheckDebit returns a detailed InsufficientBalanceError when amount cannot be debited
func (a *Account) CheckDebit(amount int64) error {
	if a.CanDebit(amount) {
		return nil
	}
	return errs.NewInsufficientBalanceError(
		a.ID.String(),
		FormatAmount(amount),
		FormatAmount(a.Balance),
		FormatAmount(a.OverdraftLimit),
	)
}

// CurrencyCode returns the account currency, falling back to DefaultCurrency
func (a *Account) CurrencyCode() string {
	if a.Currency == "" {
		return DefaultCurrency
	}
	return a.Currency
}
