package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	tests := []struct {
		name          string
		errs          []error
		attempts      int
		expectedCalls int
		expectErr     bool
	}{
		{
			name:          "Succeeds first time",
			errs:          []error{nil},
			attempts:      3,
			expectedCalls: 1,
		},
		{
			name:          "Recovers from refused connection",
			errs:          []error{errors.New("dial tcp: connection refused"), nil},
			attempts:      3,
			expectedCalls: 2,
		},
		{
			name:          "Permanent error is not retried",
			errs:          []error{errors.New("password authentication failed")},
			attempts:      3,
			expectedCalls: 1,
			expectErr:     true,
		},
		{
			name: "Gives up after max attempts",
			errs: []error{
				errors.New("connection refused"),
				errors.New("connection refused"),
				errors.New("connection refused"),
			},
			attempts:      3,
			expectedCalls: 3,
			expectErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			op := func() error {
				err := tt.errs[calls]
				calls++
				return err
			}

			err := RetryOnTransientError(context.Background(), fastRetry(tt.attempts), op,
				repository.NewErrorClassifier(), logger.NewNoopLogger())

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetryOnTransientError_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := RetryConfig{MaxAttempts: 3, RetryInterval: time.Second, MaxInterval: time.Second}
	err := RetryOnTransientError(ctx, cfg, func() error { return errors.New("connection refused") },
		repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 300*time.Millisecond, calculateBackoffWithJitter(4, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
	assert.LessOrEqual(t, backoff, 150*time.Millisecond)
}
