package dto

import (
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransferSuccessMessage is returned with every committed transfer
const TransferSuccessMessage = "Transaction completed successfully"

// TransferRequest represents the API request for a funds transfer.
// Amount accepts a JSON number or string such as 10.5 or "10.50".
type TransferRequest struct {
	FromAccountID   string           `json:"fromAccountId" binding:"required,uuid"`
	ToAccountNumber string           `json:"toAccountNumber" binding:"required,max=20"`
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	Description     string           `json:"description" binding:"max=255"`
}

// TransferResponse represents a committed transfer
type TransferResponse struct {
	ReferenceNumber string    `json:"referenceNumber"`
	Amount          string    `json:"amount"`
	BalanceAfter    string    `json:"balanceAfter"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewTransferResponse maps a transfer result to its API form
func NewTransferResponse(result *entity.TransferResult) TransferResponse {
	return TransferResponse{
		ReferenceNumber: result.ReferenceNumber,
		Amount:          entity.FormatAmount(result.Amount),
		BalanceAfter:    entity.FormatAmount(result.BalanceAfter),
		Timestamp:       result.Timestamp,
	}
}

// HistoryQuery represents the query string of the history endpoint
type HistoryQuery struct {
	AccountID string `form:"accountId" binding:"omitempty,uuid"`
	Type      string `form:"type"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// TransactionResponse represents one ledger entry with its counterparties
type TransactionResponse struct {
	ID                string    `json:"id"`
	ReferenceNumber   string    `json:"referenceNumber"`
	Type              string    `json:"transactionType"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	Description       string    `json:"description"`
	BalanceAfter      string    `json:"balanceAfter"`
	FromAccountNumber string    `json:"fromAccountNumber,omitempty"`
	ToAccountNumber   string    `json:"toAccountNumber,omitempty"`
	FromAccountHolder string    `json:"fromAccountHolder,omitempty"`
	ToAccountHolder   string    `json:"toAccountHolder,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a transaction view to its API form
func NewTransactionResponse(view *entity.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:                view.ID.String(),
		ReferenceNumber:   view.ReferenceNumber,
		Type:              string(view.Type),
		Amount:            entity.FormatAmount(view.Amount),
		Currency:          view.Currency,
		Status:            string(view.Status),
		Description:       view.Description,
		BalanceAfter:      entity.FormatAmount(view.BalanceAfter),
		FromAccountNumber: view.FromAccountNumber,
		ToAccountNumber:   view.ToAccountNumber,
		FromAccountHolder: view.FromAccountHolder,
		ToAccountHolder:   view.ToAccountHolder,
		CreatedAt:         view.CreatedAt,
	}
}

// Pagination describes the returned page
type Pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// HistoryResponse represents one page of transaction history
type HistoryResponse struct {
	Success    bool                  `json:"success"`
	Data       []TransactionResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
	Cached     bool                  `json:"cached"`
}

// NewHistoryResponse maps a history page to its API form
func NewHistoryResponse(page *entity.HistoryPage, cached bool) HistoryResponse {
	data := make([]TransactionResponse, 0, len(page.Transactions))
	for i := range page.Transactions {
		data = append(data, NewTransactionResponse(&page.Transactions[i]))
	}

	return HistoryResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Limit:  page.Limit,
			Offset: page.Offset,
			Total:  page.Total,
		},
		Cached: cached,
	}
}
