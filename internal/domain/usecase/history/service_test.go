package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/usecase/coherence"
	cachemocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func samplePage() *entity.HistoryPage {
	from := uuid.New()
	return &entity.HistoryPage{
		Transactions: []entity.TransactionView{{
			Transaction: entity.Transaction{
				ID:              uuid.New(),
				ReferenceNumber: "TXN1",
				FromAccountID:   &from,
				Type:            entity.TypeTransfer,
				Amount:          1500,
				Currency:        "USD",
				Status:          entity.StatusCompleted,
				CreatedAt:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			},
			FromAccountNumber: "ACC1001",
		}},
		Limit: 50,
		Total: 1,
	}
}

func TestService_GetHistory(t *testing.T) {
	user := uuid.New()
	requester := entity.Requester{UserID: user}

	tests := []struct {
		name           string
		filter         entity.HistoryFilter
		setupMocks     func(uow *persistencemocks.MockUnitOfWork, txs *persistencemocks.MockTransactionRepository, store *cachemocks.MockStore)
		expectedCached bool
		expectedEmpty  bool
		expectedErr    error
	}{
		{
			name:   "Cache miss loads from the store and populates the cache",
			filter: entity.HistoryFilter{},
			setupMocks: func(uow *persistencemocks.MockUnitOfWork, txs *persistencemocks.MockTransactionRepository, store *cachemocks.MockStore) {
				key := coherence.HistoryKey(entity.HistoryFilter{UserID: user, Limit: 50})
				store.EXPECT().Get(mock.Anything, key).Return(nil, false, nil).Once()
				uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txs).Once()
				txs.EXPECT().Search(mock.Anything, entity.HistoryFilter{UserID: user, Limit: 50}).Return(samplePage(), nil).Once()
				store.EXPECT().Set(mock.Anything, key, mock.Anything, coherence.DefaultTTL).Return(nil).Once()
			},
		},
		{
			name:   "Cache hit skips the store",
			filter: entity.HistoryFilter{Limit: 500, Offset: -3},
			setupMocks: func(_ *persistencemocks.MockUnitOfWork, _ *persistencemocks.MockTransactionRepository, store *cachemocks.MockStore) {
				raw, _ := json.Marshal(samplePage())
				key := coherence.HistoryKey(entity.HistoryFilter{UserID: user, Limit: 100})
				store.EXPECT().Get(mock.Anything, key).Return(raw, true, nil).Once()
			},
			expectedCached: true,
		},
		{
			name: "Foreign account filter yields an empty page",
			filter: func() entity.HistoryFilter {
				id := uuid.New()
				return entity.HistoryFilter{AccountID: &id}
			}(),
			setupMocks: func(uow *persistencemocks.MockUnitOfWork, txs *persistencemocks.MockTransactionRepository, store *cachemocks.MockStore) {
				store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil).Once()
				uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txs).Once()
				txs.EXPECT().Search(mock.Anything, mock.MatchedBy(func(f entity.HistoryFilter) bool {
					return f.UserID == user && f.AccountID != nil
				})).Return(&entity.HistoryPage{Transactions: []entity.TransactionView{}, Limit: 50}, nil).Once()
				store.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, coherence.DefaultTTL).Return(nil).Once()
			},
			expectedEmpty: true,
		},
		{
			name:   "Store failure is returned",
			filter: entity.HistoryFilter{Type: entity.TypeTransfer},
			setupMocks: func(uow *persistencemocks.MockUnitOfWork, txs *persistencemocks.MockTransactionRepository, store *cachemocks.MockStore) {
				store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down")).Once()
				uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txs).Once()
				txs.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uow := persistencemocks.NewMockUnitOfWork(t)
			txs := persistencemocks.NewMockTransactionRepository(t)
			store := cachemocks.NewMockStore(t)
			logger := quietLogger(t)
			tt.setupMocks(uow, txs, store)

			service := NewService(uow, coherence.NewLayer(store, 0, logger), logger)

			// Act
			page, cached, err := service.GetHistory(context.Background(), requester, tt.filter)

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, page)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCached, cached)
			if tt.expectedEmpty {
				assert.Empty(t, page.Transactions)
				return
			}
			require.Len(t, page.Transactions, 1)
			assert.Equal(t, "TXN1", page.Transactions[0].ReferenceNumber)
		})
	}
}

func TestService_GetHistory_Unauthorized(t *testing.T) {
	service := NewService(persistencemocks.NewMockUnitOfWork(t), coherence.NewLayer(nil, 0, nil), quietLogger(t))

	_, _, err := service.GetHistory(context.Background(), entity.Requester{}, entity.HistoryFilter{})

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestService_GetTransaction(t *testing.T) {
	// Arrange
	user := uuid.New()
	id := uuid.New()
	uow := persistencemocks.NewMockUnitOfWork(t)
	txs := persistencemocks.NewMockTransactionRepository(t)
	view := &samplePage().Transactions[0]

	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txs).Times(2)
	txs.EXPECT().GetViewForUser(mock.Anything, id, user).Return(view, nil).Once()
	txs.EXPECT().GetViewForUser(mock.Anything, id, mock.Anything).Return(nil, errs.ErrTransactionNotFound).Once()

	service := NewService(uow, coherence.NewLayer(nil, 0, nil), quietLogger(t))

	// Act
	found, err := service.GetTransaction(context.Background(), entity.Requester{UserID: user}, id)
	_, notVisible := service.GetTransaction(context.Background(), entity.Requester{UserID: uuid.New()}, id)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "TXN1", found.ReferenceNumber)
	assert.ErrorIs(t, notVisible, errs.ErrTransactionNotFound)
}
