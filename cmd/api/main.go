package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/coherence"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/history"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/reference"
	timeProvider "github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logging.Format, core.ParseLogLevel(cfg.Logging.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger core.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Ledger store
	dbConfig, err := database.NewConfig(cfg.Database, cfg.Logging.Level)
	if err != nil {
		return err
	}
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = dbManager.Close() }()

	if cfg.Database.Migrations.Enabled {
		if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	if cfg.Database.Seed.Enabled {
		if err := dbManager.MigrationManager().SeedDemoData(ctx); err != nil {
			appLogger.Warn("Demo data not seeded", map[string]any{"error": err.Error()})
		}
	}

	uow := dbManager.CreateUnitOfWork(cfg.Transaction.LockTimeout)

	// Side-effect adapters
	deps, err := buildDependencies(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer deps.Close()

	references, err := reference.NewSnowflakeGenerator(cfg.Transaction.ReferenceNode)
	if err != nil {
		return err
	}

	cacheLayer := coherence.NewLayer(deps.cacheStore, cfg.Cache.TTL, appLogger)

	retry := transfer.DefaultRetryPolicy()
	retry.MaxRetries = cfg.Transaction.MaxRetries
	if cfg.Transaction.RetryBaseDelay > 0 {
		retry.BaseDelay = cfg.Transaction.RetryBaseDelay
	}

	transferService := transfer.NewService(
		uow,
		references,
		cacheLayer,
		deps.auditSink,
		deps.publisher,
		tp,
		appLogger,
		transfer.Config{
			Retry:             retry,
			SideEffectTimeout: cfg.Transaction.SideEffectTimeout,
		},
	)
	historyService := history.NewService(uow, cacheLayer, appLogger)
	accountService := account.NewService(uow, cacheLayer, appLogger)

	healthChecks := []handler.HealthCheck{{Name: "database", Pinger: dbManager, Critical: true}}
	if deps.redisStore != nil {
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "redis", Pinger: deps.redisStore})
	}
	if deps.auditProbe != nil {
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "audit", Pinger: deps.auditProbe})
	}

	router := routes.NewRouter(appLogger, routes.Handlers{
		Transfer: handler.NewTransferHandler(transferService, appLogger),
		History:  handler.NewHistoryHandler(historyService),
		Account:  handler.NewAccountHandler(accountService),
		Health:   handler.NewHealthHandler(2*time.Second, healthChecks...),
	}, cfg.Auth.JWTSecret)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
