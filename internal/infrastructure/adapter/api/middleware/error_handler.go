package middleware

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders the last error a handler
// attached with c.Error as the failure envelope
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": GetRequestID(c),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse(errs.CodeInternalServer, "Internal server error"))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed with internal error", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
				"error":      err.Error(),
			})
		}

		c.JSON(status, dto.NewErrorResponse(errs.ErrorCode(err), MessageFor(err)))
	}
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrTransactionNotFound), errors.Is(err, errs.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrLockTimeout), errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict
	case errs.IsBusinessError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the client-facing message of err. Internal details never leave the server.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, errs.ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, errs.ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, errs.ErrLockTimeout), errors.Is(err, errs.ErrConcurrentUpdate):
		return "Account is busy, please retry"
	case errors.Is(err, errs.ErrInsufficientBalance):
		return "Insufficient balance"
	case errs.IsBusinessError(err):
		return err.Error()
	default:
		return "Internal server error"
	}
}
