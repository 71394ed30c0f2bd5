package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	auditmocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/audit"
	cachemocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/core"
	notifymocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/notify"
	persistencemocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type txKey struct{}

var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	allowAllLogs(logger)
	return logger
}

func allowAllLogs(logger *coremocks.MockLogger) {
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
}

func newFixedClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()
	return clock
}

// fixture wires a Service to mocks of every port it uses
type fixture struct {
	ctx          context.Context
	txCtx        context.Context
	uow          *persistencemocks.MockUnitOfWork
	accounts     *persistencemocks.MockAccountRepository
	transactions *persistencemocks.MockTransactionRepository
	references   *coremocks.MockReferenceGenerator
	cache        *cachemocks.MockInvalidator
	audit        *auditmocks.MockSink
	publisher    *notifymocks.MockPublisher
	logger       *coremocks.MockLogger
	service      *Service
}

func newFixture(t *testing.T, logger *coremocks.MockLogger) *fixture {
	ctx := context.Background()
	f := &fixture{
		ctx:          ctx,
		txCtx:        context.WithValue(ctx, txKey{}, "tx"),
		uow:          persistencemocks.NewMockUnitOfWork(t),
		accounts:     persistencemocks.NewMockAccountRepository(t),
		transactions: persistencemocks.NewMockTransactionRepository(t),
		references:   coremocks.NewMockReferenceGenerator(t),
		cache:        cachemocks.NewMockInvalidator(t),
		audit:        auditmocks.NewMockSink(t),
		publisher:    notifymocks.NewMockPublisher(t),
		logger:       logger,
	}
	if f.logger == nil {
		f.logger = newQuietLogger(t)
	}

	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.transactions).Maybe()

	f.service = NewService(
		f.uow,
		f.references,
		f.cache,
		f.audit,
		f.publisher,
		newFixedClock(t),
		f.logger,
		Config{Retry: RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}},
	)
	return f
}

func (f *fixture) expectBegin() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
}

func (f *fixture) expectLock(account *entity.Account) {
	f.accounts.EXPECT().LockByID(f.txCtx, account.ID).Return(account, nil).Once()
}

func (f *fixture) expectAudit(status entity.AuditStatus) {
	f.audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(entry entity.AuditEntry) bool {
		return entry.Status == status && entry.Action == entity.ActionTransfer
	})).Return(nil).Once()
}

func (f *fixture) expectRejected() {
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
	f.expectAudit(entity.AuditFailed)
}

func newAccount(owner uuid.UUID, number string, balance int64) *entity.Account {
	return &entity.Account{
		ID:            uuid.New(),
		AccountNumber: number,
		UserID:        owner,
		AccountType:   "checking",
		Balance:       balance,
		Currency:      "USD",
		Status:        entity.AccountActive,
	}
}
