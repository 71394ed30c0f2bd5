package notify

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// Publisher delivers events to a user's subscribers. Delivery is fire-and-forget:
// a failed publish never affects the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, userID uuid.UUID, event entity.TransferEvent) error
}
