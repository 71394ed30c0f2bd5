package coherence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	cachemocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestLayer_Invalidate(t *testing.T) {
	userID := uuid.MustParse("7a1c2d8e-0000-4000-8000-000000000001")
	ctx := context.Background()

	t.Run("Deletes the whole user namespace", func(t *testing.T) {
		store := cachemocks.NewMockStore(t)
		store.EXPECT().
			DeleteMatching(ctx, "ledger:user:7a1c2d8e-0000-4000-8000-000000000001:*").
			Return(int64(3), nil)

		layer := NewLayer(store, time.Minute, newQuietLogger(t))

		assert.NoError(t, layer.Invalidate(ctx, userID))
	})

	t.Run("Store failure is returned", func(t *testing.T) {
		store := cachemocks.NewMockStore(t)
		store.EXPECT().DeleteMatching(ctx, mock.Anything).Return(int64(0), errors.New("connection refused"))

		layer := NewLayer(store, time.Minute, newQuietLogger(t))

		err := layer.Invalidate(ctx, userID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Disabled layer is a no-op", func(t *testing.T) {
		layer := NewLayer(nil, time.Minute, newQuietLogger(t))
		assert.NoError(t, layer.Invalidate(ctx, userID))
		assert.False(t, layer.Enabled())
	})
}

func TestGetOrPopulate(t *testing.T) {
	ctx := context.Background()
	key := "ledger:user:u:accounts"
	cached := []string{"ACC1001", "ACC1002"}
	cachedJSON, _ := json.Marshal(cached)

	tests := []struct {
		name          string
		setupStore    func(store *cachemocks.MockStore)
		loaderResult  []string
		loaderErr     error
		expectLoader  bool
		expectedValue []string
		expectedHit   bool
		expectErr     bool
	}{
		{
			name: "Cache hit skips the loader",
			setupStore: func(store *cachemocks.MockStore) {
				store.EXPECT().Get(ctx, key).Return(cachedJSON, true, nil)
			},
			expectedValue: cached,
			expectedHit:   true,
		},
		{
			name: "Cache miss loads and stores with ttl",
			setupStore: func(store *cachemocks.MockStore) {
				store.EXPECT().Get(ctx, key).Return(nil, false, nil)
				store.EXPECT().Set(ctx, key, cachedJSON, 30*time.Second).Return(nil)
			},
			loaderResult:  cached,
			expectLoader:  true,
			expectedValue: cached,
		},
		{
			name: "Read failure degrades to the loader",
			setupStore: func(store *cachemocks.MockStore) {
				store.EXPECT().Get(ctx, key).Return(nil, false, errors.New("timeout"))
				store.EXPECT().Set(ctx, key, mock.Anything, mock.Anything).Return(nil)
			},
			loaderResult:  cached,
			expectLoader:  true,
			expectedValue: cached,
		},
		{
			name: "Population failure still returns the loaded value",
			setupStore: func(store *cachemocks.MockStore) {
				store.EXPECT().Get(ctx, key).Return(nil, false, nil)
				store.EXPECT().Set(ctx, key, mock.Anything, mock.Anything).Return(errors.New("OOM"))
			},
			loaderResult:  cached,
			expectLoader:  true,
			expectedValue: cached,
		},
		{
			name: "Undecodable entry is treated as a miss",
			setupStore: func(store *cachemocks.MockStore) {
				store.EXPECT().Get(ctx, key).Return([]byte("{not json"), true, nil)
				store.EXPECT().Set(ctx, key, cachedJSON, mock.Anything).Return(nil)
			},
			loaderResult:  cached,
			expectLoader:  true,
			expectedValue: cached,
		},
		{
			name: "Loader error is returned and nothing is stored",
			setupStore: func(store *cachemocks.MockStore) {
				store.EXPECT().Get(ctx, key).Return(nil, false, nil)
			},
			loaderErr:    errors.New("db down"),
			expectLoader: true,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := cachemocks.NewMockStore(t)
			tt.setupStore(store)
			layer := NewLayer(store, time.Minute, newQuietLogger(t))

			loaderCalled := false
			loader := func(context.Context) ([]string, error) {
				loaderCalled = true
				return tt.loaderResult, tt.loaderErr
			}

			// Act
			value, hit, err := GetOrPopulate(ctx, layer, key, 30*time.Second, loader)

			// Assert
			assert.Equal(t, tt.expectLoader, loaderCalled)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHit, hit)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestGetOrPopulate_DisabledLayer(t *testing.T) {
	layer := NewLayer(nil, 0, newQuietLogger(t))

	value, hit, err := GetOrPopulate(context.Background(), layer, "k", 0, func(context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 42, value)
}

func TestKeys(t *testing.T) {
	userID := uuid.MustParse("7a1c2d8e-0000-4000-8000-000000000001")
	accountID := uuid.MustParse("0b7d55a0-0000-4000-8000-0000000000aa")

	assert.Equal(t, "ledger:user:7a1c2d8e-0000-4000-8000-000000000001:accounts", AccountsKey(userID))

	all := HistoryKey(entity.HistoryFilter{UserID: userID, Limit: 50})
	assert.Equal(t, "ledger:user:7a1c2d8e-0000-4000-8000-000000000001:transactions:all:50:0:all", all)

	filtered := HistoryKey(entity.HistoryFilter{
		UserID:    userID,
		AccountID: &accountID,
		Type:      entity.TypeTransfer,
		Limit:     10,
		Offset:    20,
	})
	assert.Equal(t,
		"ledger:user:7a1c2d8e-0000-4000-8000-000000000001:transactions:0b7d55a0-0000-4000-8000-0000000000aa:10:20:transfer",
		filtered)
}

// A page written after a concurrent invalidation must still expire
func TestGetOrPopulate_EntriesAlwaysCarryTTL(t *testing.T) {
	ctx := context.Background()
	store := cachemocks.NewMockStore(t)
	store.EXPECT().Get(ctx, "k").Return(nil, false, nil).Once()
	store.EXPECT().Set(ctx, "k", mock.Anything, DefaultTTL).Return(nil).Once()
	layer := NewLayer(store, 0, newQuietLogger(t))

	_, _, err := GetOrPopulate(ctx, layer, "k", 0, func(context.Context) (int, error) {
		return 1, nil
	})

	require.NoError(t, err)
}
