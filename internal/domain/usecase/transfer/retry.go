package transfer

import (
	"context"
	"errors"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
)

// RetryPolicy bounds how often a whole unit of work is replayed after a transient abort
type RetryPolicy struct {
	MaxRetries   int
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64 // 0.0-1.0
}

// DefaultRetryPolicy returns the default retry configuration
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		BaseDelay:    20 * time.Millisecond,
		MaxDelay:     500 * time.Millisecond,
		JitterFactor: 0.2,
	}
}

// isTransient reports whether the store aborted the unit of work in a way that a
// replay can fix. Lock timeouts are excluded: they go back to the caller.
func isTransient(err error) bool {
	return errors.Is(err, errs.ErrConcurrentUpdate) || errors.Is(err, errs.ErrDuplicateReference)
}

// withRetry runs operation until it succeeds, fails permanently, or the retries are exhausted.
// It returns the number of attempts made.
func withRetry(
	ctx context.Context,
	policy RetryPolicy,
	logger coreport.Logger,
	operation func(ctx context.Context) error,
) (int, error) {
	var err error
	attempt := 0

	for {
		attempt++
		err = operation(ctx)
		if err == nil || !isTransient(err) || attempt > policy.MaxRetries {
			return attempt, err
		}

		backoff := backoffWithJitter(attempt-1, policy)
		logger.Warn("Transient ledger conflict, retrying transfer", map[string]any{
			"attempt":     attempt,
			"max_retries": policy.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return attempt, ctx.Err()
		}
	}
}

// backoffWithJitter computes baseDelay * 2^attempt, capped at MaxDelay, plus jitter
func backoffWithJitter(attempt int, policy RetryPolicy) time.Duration {
	backoff := policy.BaseDelay * (1 << uint(attempt))
	if policy.MaxDelay > 0 && backoff > policy.MaxDelay {
		backoff = policy.MaxDelay
	}

	if policy.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * policy.JitterFactor * rand.Float64())
	}

	return backoff
}
