package routes

import (
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Transfer *handler.TransferHandler
	History  *handler.HistoryHandler
	Account  *handler.AccountHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. Everything under /api requires a bearer token.
func SetupRoutes(router *gin.Engine, handlers Handlers, auth gin.HandlerFunc) {
	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api", auth)
	{
		transactions := api.Group("/transactions")
		transactions.POST("", handlers.Transfer.CreateTransfer)
		transactions.GET("", handlers.History.ListTransactions)
		transactions.GET("/:transactionId", handlers.History.GetTransaction)

		accounts := api.Group("/accounts")
		accounts.GET("", handlers.Account.ListAccounts)
		accounts.GET("/:accountId", handlers.Account.GetAccount)
		accounts.GET("/:accountId/balance", handlers.Account.GetBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
}

// NewRouter builds a gin engine with the middlewares and routes installed
func NewRouter(logger coreport.Logger, handlers Handlers, jwtSecret string) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger)
	SetupRoutes(router, handlers, middleware.Auth(jwtSecret, logger))
	return router
}
