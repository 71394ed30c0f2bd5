package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is a shared key/value cache with per-entry expiry
type Store interface {
	// Get returns the cached value and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteMatching removes every key matching a glob pattern and returns how many were removed
	DeleteMatching(ctx context.Context, pattern string) (int64, error)
}

// Invalidator drops every derived entry that depends on a user's ledger state
type Invalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
