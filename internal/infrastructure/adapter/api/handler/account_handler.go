package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler serves the requester's accounts
type AccountHandler struct {
	accounts usecase.AccountUseCase
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ListAccounts handles GET /api/accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		_ = c.Error(errs.ErrUnauthorized)
		return
	}

	accounts, cached, err := h.accounts.ListAccounts(c.Request.Context(), requester)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts, cached))
}

// GetAccount handles GET /api/accounts/:accountId
func (h *AccountHandler) GetAccount(c *gin.Context) {
	requester, id, ok := accountRequest(c)
	if !ok {
		return
	}

	account, err := h.accounts.GetAccount(c.Request.Context(), requester, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewAccountResponse(account)))
}

// GetBalance handles GET /api/accounts/:accountId/balance
func (h *AccountHandler) GetBalance(c *gin.Context) {
	requester, id, ok := accountRequest(c)
	if !ok {
		return
	}

	account, err := h.accounts.GetBalance(c.Request.Context(), requester, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.NewBalanceResponse(account)))
}

// accountRequest extracts the requester and the account id path parameter.
// A malformed id cannot name any account, so it is reported as not found.
func accountRequest(c *gin.Context) (requester entity.Requester, id uuid.UUID, ok bool) {
	requester, ok = middleware.GetRequester(c)
	if !ok {
		_ = c.Error(errs.ErrUnauthorized)
		return requester, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		_ = c.Error(errs.ErrAccountNotFound)
		return requester, uuid.Nil, false
	}

	return requester, id, true
}
