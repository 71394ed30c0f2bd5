package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance        = 4001
	CodeInvalidAmount              = 4002
	CodeInvalidRequest             = 4003
	CodeSelfTransferNotAllowed     = 4004
	CodeAccountFrozen              = 4005
	CodeCurrencyMismatch           = 4006
	CodeUnauthorized               = 4010
	CodeSourceAccountNotFound      = 4040
	CodeDestinationAccountNotFound = 4041
	CodeTransactionNotFound        = 4042
	CodeAccountNotFound            = 4043
	CodeLockTimeout                = 4090
	CodeConcurrentUpdate           = 4091

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a debit would take the balance below the overdraft limit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the amount is not a positive value with at most two decimals
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSourceAccountNotFound is returned when the source account is missing, closed, or owned by someone else
	ErrSourceAccountNotFound = errors.New("source account not found")

	// ErrDestinationAccountNotFound is returned when no open account carries the destination number
	ErrDestinationAccountNotFound = errors.New("destination account not found")

	// ErrSelfTransferNotAllowed is returned when source and destination are the same account
	ErrSelfTransferNotAllowed = errors.New("cannot transfer to the same account")

	// ErrAccountFrozen is returned when either side of a transfer is frozen
	ErrAccountFrozen = errors.New("account is frozen")

	// ErrCurrencyMismatch is returned when the two accounts hold different currencies
	ErrCurrencyMismatch = errors.New("currency mismatch between accounts")

	// ErrAccountNotFound is returned when the requested account doesn't exist or isn't visible to the requester
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLockTimeout is returned when the row locks of a transfer could not be acquired in time
	ErrLockTimeout = errors.New("timed out waiting for account lock")

	// ErrConcurrentUpdate is returned on deadlock or serialization failure
	ErrConcurrentUpdate = errors.New("concurrent update detected")

	// ErrDuplicateReference is returned when a generated reference number already exists
	ErrDuplicateReference = errors.New("duplicate reference number")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the request carries no verifiable identity
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrSelfTransferNotAllowed):
		return CodeSelfTransferNotAllowed
	case errors.Is(err, ErrAccountFrozen):
		return CodeAccountFrozen
	case errors.Is(err, ErrCurrencyMismatch):
		return CodeCurrencyMismatch
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrSourceAccountNotFound):
		return CodeSourceAccountNotFound
	case errors.Is(err, ErrDestinationAccountNotFound):
		return CodeDestinationAccountNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrLockTimeout):
		return CodeLockTimeout
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// IsRetryable reports whether the whole request can be safely retried by the caller.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLockTimeout) ||
		errors.Is(err, ErrConcurrentUpdate) ||
		errors.Is(err, ErrDuplicateReference) ||
		errors.Is(err, ErrDatabaseConnection)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrSourceAccountNotFound) ||
		errors.Is(err, ErrDestinationAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsBusinessError checks if the error is a rejection the client can act on
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrSelfTransferNotAllowed) ||
		errors.Is(err, ErrAccountFrozen) ||
		errors.Is(err, ErrCurrencyMismatch) ||
		errors.Is(err, ErrSourceAccountNotFound) ||
		errors.Is(err, ErrDestinationAccountNotFound)
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	AccountID      string
	Amount         string
	Balance        string
	OverdraftLimit string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %s: required %s, available %s (overdraft %s)",
		e.AccountID, e.Amount, e.Balance, e.OverdraftLimit)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"account_id":      e.AccountID,
		"amount":          e.Amount,
		"balance":         e.Balance,
		"overdraft_limit": e.OverdraftLimit,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(accountID, amount, balance, overdraftLimit string) error {
	return &InsufficientBalanceError{
		AccountID:      accountID,
		Amount:         amount,
		Balance:        balance,
		OverdraftLimit: overdraftLimit,
	}
}

// TransferError represents a rejected or failed transfer attempt
type TransferError struct {
	UserID          string
	FromAccountID   string
	ToAccountNumber string
	Amount          string
	Attempts        int
	Err             error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s from account %s to %s failed after %d attempt(s): %v",
		e.Amount, e.FromAccountID, e.ToAccountNumber, e.Attempts, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":        "transfer_error",
		"user_id":           e.UserID,
		"from_account_id":   e.FromAccountID,
		"to_account_number": e.ToAccountNumber,
		"amount":            e.Amount,
		"attempts":          e.Attempts,
		"error":             e.Err.Error(),
		"error_code":        ErrorCode(e.Err),
	}
	var balanceErr *InsufficientBalanceError
	if errors.As(e.Err, &balanceErr) {
		fields["balance"] = balanceErr.Balance
	}
	return fields
}

// NewTransferError wraps err with the context of the transfer that produced it
func NewTransferError(userID, fromAccountID, toAccountNumber, amount string, attempts int, err error) error {
	return &TransferError{
		UserID:          userID,
		FromAccountID:   fromAccountID,
		ToAccountNumber: toAccountNumber,
		Amount:          amount,
		Attempts:        attempts,
		Err:             err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}
