package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockUnitOfWork(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDb, DriverName: "postgres"}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	uow := NewUnitOfWork(db, 250*time.Millisecond, logger.NewNoopLogger(), nil).(*UnitOfWork)
	return uow, mock
}

func TestUnitOfWork_BeginSetsLockTimeout(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout = '250ms'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BeginFailure(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := uow.Begin(context.Background())

	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

func TestUnitOfWork_CommitSerializationFailureIsRetryable(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	err = uow.Commit(txCtx)

	assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	assert.True(t, errs.IsRetryable(err))
}

func TestUnitOfWork_RollbackAfterCommitIsIgnored(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_WithoutTransaction(t *testing.T) {
	uow, _ := newMockUnitOfWork(t)

	assert.ErrorIs(t, uow.Commit(context.Background()), errs.ErrInternalServer)
	assert.ErrorIs(t, uow.Rollback(context.Background()), errs.ErrInternalServer)
	assert.NotNil(t, uow.GetAccountRepository(context.Background()))
	assert.NotNil(t, uow.GetTransactionRepository(context.Background()))
}

func TestLockTimeoutStatement(t *testing.T) {
	assert.Equal(t, "SET LOCAL lock_timeout = '5000ms'", lockTimeoutStatement(5*time.Second))
	assert.Equal(t, "SET LOCAL lock_timeout = '1ms'", lockTimeoutStatement(0))
}
