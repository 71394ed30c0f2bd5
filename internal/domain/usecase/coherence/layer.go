package coherence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// DefaultTTL bounds how long a missed invalidation can serve stale data
const DefaultTTL = 300 * time.Second

// Layer keeps the derived read caches coherent with the ledger.
// A Layer without a store passes every read straight to the loader.
type Layer struct {
	store      cache.Store
	defaultTTL time.Duration
	logger     coreport.Logger
}

// NewLayer creates a cache coherence layer over store. store may be nil when caching is disabled.
func NewLayer(store cache.Store, defaultTTL time.Duration, logger coreport.Logger) *Layer {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Layer{
		store:      store,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

// Enabled reports whether a backing store is configured
func (l *Layer) Enabled() bool {
	return l != nil && l.store != nil
}

// Invalidate synchronously removes every account-summary and history entry of the user
func (l *Layer) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if !l.Enabled() {
		return nil
	}

	removed, err := l.store.DeleteMatching(ctx, invalidationPattern(userID))
	if err != nil {
		return fmt.Errorf("invalidate cache for user %s: %w", userID, err)
	}

	l.logger.Debug("Invalidated user cache", map[string]any{
		"user_id": userID.String(),
		"removed": removed,
	})
	return nil
}

// GetOrPopulate returns the cached value under key or loads, stores and returns it.
// The boolean reports a cache hit. Cache faults never fail the read: a broken
// or undecodable entry counts as a miss and a failed store is only logged.
func GetOrPopulate[T any](
	ctx context.Context,
	l *Layer,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, bool, error) {
	if !l.Enabled() {
		value, err := loader(ctx)
		return value, false, err
	}

	if ttl <= 0 {
		ttl = l.defaultTTL
	}

	raw, found, err := l.store.Get(ctx, key)
	switch {
	case err != nil:
		l.logger.Warn("Cache read failed, falling back to store", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	case found:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, true, nil
		}
		l.logger.Warn("Discarding undecodable cache entry", map[string]any{"key": key})
	}

	value, err := loader(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		l.logger.Warn("Cache entry could not be encoded", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return value, false, nil
	}

	if err := l.store.Set(ctx, key, payload, ttl); err != nil {
		l.logger.Warn("Cache population failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}

	return value, false, nil
}
