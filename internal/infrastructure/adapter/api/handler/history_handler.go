package handler

import (
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HistoryHandler serves the transaction history endpoints
type HistoryHandler struct {
	history usecase.HistoryUseCase
}

// NewHistoryHandler creates a new history handler instance
func NewHistoryHandler(history usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// ListTransactions handles GET /api/transactions
func (h *HistoryHandler) ListTransactions(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		_ = c.Error(errs.ErrUnauthorized)
		return
	}

	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
		return
	}

	txType, err := entity.ParseTransactionType(query.Type)
	if err != nil {
		_ = c.Error(err)
		return
	}

	filter := entity.HistoryFilter{
		Type:   txType,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if query.AccountID != "" {
		accountID := uuid.MustParse(query.AccountID)
		filter.AccountID = &accountID
	}

	page, cached, err := h.history.GetHistory(c.Request.Context(), requester, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(page, cached))
}

// GetTransaction handles GET /api/transactions/:transactionId
func (h *HistoryHandler) GetTransaction(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		_ = c.Error(errs.ErrUnauthorized)
		return
	}

	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		_ = c.Error(errs.ErrTransactionNotFound)
		return
	}

	view, err := h.history.GetTransaction(c.Request.Context(), requester, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewTransactionResponse(view)))
}
