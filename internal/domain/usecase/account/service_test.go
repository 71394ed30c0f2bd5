package account

import (
	"context"
	"encoding/json"
	"testing"

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

func newLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestService_ListAccounts(t *testing.T) {
	user := uuid.New()
	accounts := []*entity.Account{{
		ID:            uuid.New(),
		AccountNumber: "ACC1001",
		UserID:        user,
		Balance:       120000,
		Currency:      "USD",
		Status:        entity.AccountActive,
	}}

	t.Run("Miss then populate", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockAccountRepository(t)
		store := cachemocks.NewMockStore(t)
		logger := newLogger(t)

		store.EXPECT().Get(mock.Anything, coherence.AccountsKey(user)).Return(nil, false, nil).Once()
		uow.EXPECT().GetAccountRepository(mock.Anything).Return(repo).Once()
		repo.EXPECT().ListByUser(mock.Anything, user).Return(accounts, nil).Once()
		store.EXPECT().Set(mock.Anything, coherence.AccountsKey(user), mock.Anything, coherence.DefaultTTL).Return(nil).Once()

		service := NewService(uow, coherence.NewLayer(store, 0, logger), logger)
		result, cached, err := service.ListAccounts(context.Background(), entity.Requester{UserID: user})

		require.NoError(t, err)
		assert.False(t, cached)
		assert.Equal(t, accounts, result)
	})

	t.Run("Hit", func(t *testing.T) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		store := cachemocks.NewMockStore(t)
		logger := newLogger(t)
		raw, err := json.Marshal(accounts)
		require.NoError(t, err)

		store.EXPECT().Get(mock.Anything, coherence.AccountsKey(user)).Return(raw, true, nil).Once()

		service := NewService(uow, coherence.NewLayer(store, 0, logger), logger)
		result, cached, err := service.ListAccounts(context.Background(), entity.Requester{UserID: user})

		require.NoError(t, err)
		assert.True(t, cached)
		require.Len(t, result, 1)
		assert.Equal(t, int64(120000), result[0].Balance)
	})

	t.Run("Anonymous requester", func(t *testing.T) {
		service := NewService(persistencemocks.NewMockUnitOfWork(t), coherence.NewLayer(nil, 0, nil), newLogger(t))

		_, _, err := service.ListAccounts(context.Background(), entity.Requester{})

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestService_GetBalance(t *testing.T) {
	user := uuid.New()
	id := uuid.New()

	tests := []struct {
		name        string
		repoResult  *entity.Account
		repoErr     error
		expectedErr error
	}{
		{
			name:       "Owned account",
			repoResult: &entity.Account{ID: id, UserID: user, Balance: 990},
		},
		{
			name:        "Not owned",
			repoErr:     errs.ErrAccountNotFound,
			expectedErr: errs.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := persistencemocks.NewMockUnitOfWork(t)
			repo := persistencemocks.NewMockAccountRepository(t)
			uow.EXPECT().GetAccountRepository(mock.Anything).Return(repo).Once()
			repo.EXPECT().GetOwnedByID(mock.Anything, id, user).Return(tt.repoResult, tt.repoErr).Once()

			// A balance read must never consult the cache
			service := NewService(uow, coherence.NewLayer(cachemocks.NewMockStore(t), 0, nil), newLogger(t))
			account, err := service.GetBalance(context.Background(), entity.Requester{UserID: user}, id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(990), account.Balance)
		})
	}
}
