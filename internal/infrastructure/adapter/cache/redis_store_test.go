package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, logger.NewNoopLogger()), mr
}

func TestRedisStore_SetAndGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ledger:user:1:accounts", []byte(`[1]`), 300*time.Second))

	value, found, err := store.Get(ctx, "ledger:user:1:accounts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[1]`), value)
	assert.Equal(t, 300*time.Second, mr.TTL("ledger:user:1:accounts"))

	mr.FastForward(301 * time.Second)

	_, found, err = store.Get(ctx, "ledger:user:1:accounts")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	value, found, err := store.Get(context.Background(), "missing")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestRedisStore_DeleteMatching(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 450; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("ledger:user:a:transactions:all:50:%d:all", i), "x"))
	}
	require.NoError(t, mr.Set("ledger:user:a:accounts", "x"))
	require.NoError(t, mr.Set("ledger:user:b:accounts", "x"))

	removed, err := store.DeleteMatching(ctx, "ledger:user:a:*")

	require.NoError(t, err)
	assert.Equal(t, int64(451), removed)
	assert.True(t, mr.Exists("ledger:user:b:accounts"))
	assert.False(t, mr.Exists("ledger:user:a:accounts"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "k")
	assert.Error(t, err)

	_, err = store.DeleteMatching(context.Background(), "ledger:user:a:*")
	assert.Error(t, err)

	assert.Error(t, store.Ping(context.Background()))
}
