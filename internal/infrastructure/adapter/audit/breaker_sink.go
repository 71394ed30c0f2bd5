package audit

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	auditport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/audit"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the circuit breaker in front of the audit store
type BreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	HalfOpenRequests    uint32
}

// DefaultBreakerConfig returns the breaker settings used in production
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
		HalfOpenRequests:    1,
	}
}

// BreakerSink stops calling an unhealthy audit store for a while so that
// transfers don't each wait out the store's timeout
type BreakerSink struct {
	next    auditport.Sink
	breaker *gobreaker.CircuitBreaker
	logger  coreport.Logger
}

// NewBreakerSink wraps next with a circuit breaker
func NewBreakerSink(next auditport.Sink, config BreakerConfig, logger coreport.Logger) *BreakerSink {
	settings := gobreaker.Settings{
		Name:        "audit-sink",
		MaxRequests: config.HalfOpenRequests,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Audit sink circuit breaker changed state", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}

	return &BreakerSink{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Record forwards entry unless the breaker is open, in which case
// gobreaker.ErrOpenState is returned immediately
func (s *BreakerSink) Record(ctx context.Context, entry entity.AuditEntry) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.next.Record(ctx, entry)
	})
	return err
}

// ErrAuditUnavailable is reported by Ping while the breaker is open
var ErrAuditUnavailable = errors.New("audit store unavailable: circuit breaker open")

// Ping lets the health endpoint report a tripped breaker without touching the store
func (s *BreakerSink) Ping(context.Context) error {
	if s.breaker.State() == gobreaker.StateOpen {
		return ErrAuditUnavailable
	}
	return nil
}
