package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint passed to SCAN while collecting keys to delete
const scanBatch = 200

// RedisStore implements the cache store on a shared Redis instance
type RedisStore struct {
	client redis.UniversalClient
	logger coreport.Logger
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client redis.UniversalClient, logger coreport.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Get returns the cached value and whether it was present
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key for ttl
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// DeleteMatching removes every key matching pattern. SCAN is used instead of
// KEYS so a large keyspace never blocks the server.
func (s *RedisStore) DeleteMatching(ctx context.Context, pattern string) (int64, error) {
	var removed int64
	var cursor uint64

	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("redis scan %s: %w", pattern, err)
		}

		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("redis del %s: %w", pattern, err)
			}
			removed += n
		}

		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}

// Ping checks that Redis answers
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
