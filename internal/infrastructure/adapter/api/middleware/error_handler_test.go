package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{fmt.Errorf("%w: bad", errs.ErrInvalidRequest), http.StatusBadRequest},
		{errs.ErrSelfTransferNotAllowed, http.StatusBadRequest},
		{errs.ErrAccountFrozen, http.StatusBadRequest},
		{errs.ErrCurrencyMismatch, http.StatusBadRequest},
		{errs.ErrSourceAccountNotFound, http.StatusBadRequest},
		{errs.ErrTransactionNotFound, http.StatusNotFound},
		{errs.ErrAccountNotFound, http.StatusNotFound},
		{errs.ErrLockTimeout, http.StatusConflict},
		{errs.ErrConcurrentUpdate, http.StatusConflict},
		{errs.ErrUnauthorized, http.StatusUnauthorized},
		{errs.ErrDatabaseConnection, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func TestErrorHandler_RecoversFromPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler(logger.NewNoopLogger()))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"code":5000,"message":"Internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
