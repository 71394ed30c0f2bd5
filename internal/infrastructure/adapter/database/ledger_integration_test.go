//go:build integration

package database_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/coherence"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/history"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/audit"
	cacheadapter "github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/notification"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/reference"
	timeProvider "github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	aliceID       = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	bobID         = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	aliceChecking = uuid.MustParse("a1111111-0000-4000-8000-000000000001")
	bobChecking   = uuid.MustParse("b2222222-0000-4000-8000-000000000001")
)

type ledgerEnv struct {
	db       *gorm.DB
	transfer *transfer.Service
	history  *history.Service
}

// ledgerOptions overrides parts of the wiring for a single test
type ledgerOptions struct {
	references coreport.ReferenceGenerator
	maxRetries int
}

// fixedReference hands out the same reference number every time
type fixedReference string

func (r fixedReference) Next() (string, error) { return string(r), nil }

func setupLedger(t *testing.T, overrides ...func(*ledgerOptions)) *ledgerEnv {
	t.Helper()
	ctx := context.Background()

	opts := ledgerOptions{maxRetries: 5}
	for _, override := range overrides {
		override(&opts)
	}

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("credora"),
		tcpostgres.WithPassword("credora"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(40)

	log := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()
	manager := database.NewManagerWithDB(db, log, tp)
	t.Cleanup(func() { _ = manager.Close() })

	require.NoError(t, manager.MigrationManager().MigrateAll(ctx))
	require.NoError(t, manager.MigrationManager().SeedDemoData(ctx))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	layer := coherence.NewLayer(cacheadapter.NewRedisStore(client, log), time.Minute, log)

	if opts.references == nil {
		references, err := reference.NewSnowflakeGenerator(1)
		require.NoError(t, err)
		opts.references = references
	}

	uow := manager.CreateUnitOfWork(5 * time.Second)
	retry := transfer.DefaultRetryPolicy()
	retry.MaxRetries = opts.maxRetries

	return &ledgerEnv{
		db: db,
		transfer: transfer.NewService(uow, opts.references, layer, audit.NewLogSink(log), notification.NoopPublisher{}, tp, log,
			transfer.Config{Retry: retry, SideEffectTimeout: time.Second}),
		history: history.NewService(uow, layer, log),
	}
}

func (e *ledgerEnv) balance(t *testing.T, id uuid.UUID) int64 {
	t.Helper()
	var balance int64
	require.NoError(t, e.db.Raw("SELECT balance FROM accounts WHERE id = ?", id).Scan(&balance).Error)
	return balance
}

func (e *ledgerEnv) totalBalance(t *testing.T) int64 {
	t.Helper()
	var total int64
	require.NoError(t, e.db.Raw("SELECT COALESCE(SUM(balance), 0) FROM accounts").Scan(&total).Error)
	return total
}

func TestLedger_ConcurrentTransfersInBothDirections(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()
	before := env.totalBalance(t)

	const perDirection = 25
	var wg sync.WaitGroup
	var failures atomic.Int32

	send := func(userID, from uuid.UUID, to string) {
		defer wg.Done()
		_, err := env.transfer.Transfer(ctx,
			entity.Requester{UserID: userID, RequestID: uuid.NewString()},
			entity.TransferCommand{FromAccountID: from, ToAccountNumber: to, Amount: 1_000},
		)
		if err != nil {
			failures.Add(1)
		}
	}

	for i := 0; i < perDirection; i++ {
		wg.Add(2)
		go send(aliceID, aliceChecking, "2000000001")
		go send(bobID, bobChecking, "1000000001")
	}
	wg.Wait()

	assert.Zero(t, failures.Load())
	assert.Equal(t, int64(500_000), env.balance(t, aliceChecking))
	assert.Equal(t, int64(100_000), env.balance(t, bobChecking))
	assert.Equal(t, before, env.totalBalance(t))

	var count, distinct int64
	require.NoError(t, env.db.Raw("SELECT COUNT(*) FROM transactions").Scan(&count).Error)
	require.NoError(t, env.db.Raw("SELECT COUNT(DISTINCT reference_number) FROM transactions").Scan(&distinct).Error)
	assert.Equal(t, int64(2*perDirection), count)
	assert.Equal(t, count, distinct)
}

func TestLedger_InsufficientBalanceUnderContention(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()
	before := env.totalBalance(t)

	// Bob holds 1000.00 with no overdraft, so exactly ten 100.00 transfers fit
	const attempts = 20
	var wg sync.WaitGroup
	var succeeded, insufficient atomic.Int32

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.transfer.Transfer(ctx,
				entity.Requester{UserID: bobID},
				entity.TransferCommand{FromAccountID: bobChecking, ToAccountNumber: "1000000001", Amount: 10_000},
			)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errs.IsInsufficientBalanceError(err):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	assert.Equal(t, int32(10), insufficient.Load())
	assert.Zero(t, env.balance(t, bobChecking))
	assert.Equal(t, before, env.totalBalance(t))
}

func TestLedger_HistoryReflectsTransfersAfterCachedRead(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()

	bob := entity.Requester{UserID: bobID}
	filter := entity.HistoryFilter{UserID: bobID}

	page, _, err := env.history.GetHistory(ctx, bob, filter)
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	_, cached, err := env.history.GetHistory(ctx, bob, filter)
	require.NoError(t, err)
	assert.True(t, cached)

	result, err := env.transfer.Transfer(ctx,
		entity.Requester{UserID: aliceID},
		entity.TransferCommand{FromAccountID: aliceChecking, ToAccountNumber: "2000000001", Amount: 12_345, Description: "rent"},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000-12_345), result.BalanceAfter)

	page, cached, err = env.history.GetHistory(ctx, bob, filter)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, result.ReferenceNumber, page.Transactions[0].ReferenceNumber)
}

func TestLedger_ReferenceNumbersAreUnique(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, err := env.transfer.Transfer(ctx,
			entity.Requester{UserID: aliceID},
			entity.TransferCommand{FromAccountID: aliceChecking, ToAccountNumber: "1000000002", Amount: 100},
		)
		require.NoError(t, err)
	}

	var total, distinct int64
	require.NoError(t, env.db.Raw("SELECT COUNT(*) FROM transactions").Scan(&total).Error)
	require.NoError(t, env.db.Raw("SELECT COUNT(DISTINCT reference_number) FROM transactions").Scan(&distinct).Error)
	assert.Equal(t, int64(30), total)
	assert.Equal(t, total, distinct)
}

func TestLedger_FailedInsertLeavesBalancesUntouched(t *testing.T) {
	env := setupLedger(t, func(o *ledgerOptions) {
		o.references = fixedReference("TXNFIXED0001")
		o.maxRetries = 0
	})
	ctx := context.Background()
	alice := entity.Requester{UserID: aliceID}
	cmd := entity.TransferCommand{FromAccountID: aliceChecking, ToAccountNumber: "2000000001", Amount: 5_000}

	_, err := env.transfer.Transfer(ctx, alice, cmd)
	require.NoError(t, err)

	sourceBefore := env.balance(t, aliceChecking)
	destinationBefore := env.balance(t, bobChecking)
	totalBefore := env.totalBalance(t)

	// Both deltas are applied before the insert hits the reference_number unique index
	_, err = env.transfer.Transfer(ctx, alice, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateReference)

	assert.Equal(t, sourceBefore, env.balance(t, aliceChecking))
	assert.Equal(t, destinationBefore, env.balance(t, bobChecking))
	assert.Equal(t, totalBefore, env.totalBalance(t))

	var count int64
	require.NoError(t, env.db.Raw("SELECT COUNT(*) FROM transactions").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}
