package notification

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/notify"
	"github.com/google/uuid"
)

// TimeoutPublisher bounds every publish of the wrapped publisher
type TimeoutPublisher struct {
	next    notify.Publisher
	timeout time.Duration
}

// WithTimeout wraps next so a publish never takes longer than timeout. A non-positive timeout returns next unchanged.
func WithTimeout(next notify.Publisher, timeout time.Duration) notify.Publisher {
	if timeout <= 0 {
		return next
	}
	return &TimeoutPublisher{next: next, timeout: timeout}
}

// Publish forwards to the wrapped publisher under the deadline
func (p *TimeoutPublisher) Publish(ctx context.Context, userID uuid.UUID, event entity.TransferEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.next.Publish(ctx, userID, event)
}
