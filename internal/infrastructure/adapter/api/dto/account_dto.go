package dto

import (
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
)

// AccountResponse represents one account of the requester
type AccountResponse struct {
	ID             string    `json:"id"`
	AccountNumber  string    `json:"accountNumber"`
	AccountType    string    `json:"accountType"`
	Balance        string    `json:"balance"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	OverdraftLimit string    `json:"overdraftLimit"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewAccountResponse maps an account to its API form
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID.String(),
		AccountNumber:  account.AccountNumber,
		AccountType:    account.AccountType,
		Balance:        entity.FormatAmount(account.Balance),
		Currency:       account.CurrencyCode(),
		Status:         string(account.Status),
		OverdraftLimit: entity.FormatAmount(account.OverdraftLimit),
		CreatedAt:      account.CreatedAt,
	}
}

// AccountListResponse represents the requester's accounts
type AccountListResponse struct {
	Success bool              `json:"success"`
	Data    []AccountResponse `json:"data"`
	Cached  bool              `json:"cached"`
}

// NewAccountListResponse maps accounts to their API form
func NewAccountListResponse(accounts []*entity.Account, cached bool) AccountListResponse {
	data := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, NewAccountResponse(a))
	}
	return AccountListResponse{Success: true, Data: data, Cached: cached}
}

// BalanceResponse represents an authoritative balance read
type BalanceResponse struct {
	AccountID        string `json:"accountId"`
	AccountNumber    string `json:"accountNumber"`
	Balance          string `json:"balance"`
	AvailableBalance string `json:"availableBalance"`
	Currency         string `json:"currency"`
}

// NewBalanceResponse maps an account to its balance view
func NewBalanceResponse(account *entity.Account) BalanceResponse {
	return BalanceResponse{
		AccountID:        account.ID.String(),
		AccountNumber:    account.AccountNumber,
		Balance:          entity.FormatAmount(account.Balance),
		AvailableBalance: entity.FormatAmount(account.AvailableFunds()),
		Currency:         account.CurrencyCode(),
	}
}
