package handler

import (
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles funds transfer requests
type TransferHandler struct {
	transfers usecase.TransferUseCase
	logger    coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transfers usecase.TransferUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		transfers: transfers,
		logger:    logger,
	}
}

// CreateTransfer handles POST /api/transactions
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		_ = c.Error(errs.ErrUnauthorized)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid transfer request format", map[string]any{
			"request_id": requester.RequestID,
			"error":      err.Error(),
		})
		_ = c.Error(fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
		return
	}

	amount, err := entity.AmountFromDecimal(*req.Amount)
	if err != nil {
		_ = c.Error(err)
		return
	}

	cmd := entity.TransferCommand{
		FromAccountID:   uuid.MustParse(req.FromAccountID),
		ToAccountNumber: req.ToAccountNumber,
		Amount:          amount,
		Description:     req.Description,
	}

	result, err := h.transfers.Transfer(c.Request.Context(), requester, cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{
		Success: true,
		Message: dto.TransferSuccessMessage,
		Data:    dto.NewTransferResponse(result),
	})
}
