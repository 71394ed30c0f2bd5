package notification

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// NoopPublisher drops every event. Used when notifications are disabled.
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, uuid.UUID, entity.TransferEvent) error { return nil }
