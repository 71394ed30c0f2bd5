package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultChannelPrefix namespaces the per-user Pub/Sub channels
const DefaultChannelPrefix = "notifications"

// RedisPublisher publishes transfer events on a per-user Redis Pub/Sub channel
type RedisPublisher struct {
	client redis.UniversalClient
	prefix string
	logger coreport.Logger
}

// NewRedisPublisher creates a new RedisPublisher
func NewRedisPublisher(client redis.UniversalClient, prefix string, logger coreport.Logger) *RedisPublisher {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &RedisPublisher{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// Channel returns the Pub/Sub channel of a user, {prefix}:{userId}
func (p *RedisPublisher) Channel(userID uuid.UUID) string {
	return p.prefix + ":" + userID.String()
}

// Publish sends event to the user's channel. Having no subscribers is not an error.
func (p *RedisPublisher) Publish(ctx context.Context, userID uuid.UUID, event entity.TransferEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	channel := p.Channel(userID)
	receivers, err := p.client.Publish(ctx, channel, payload).Result()
	if err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}

	p.logger.Debug("Notification published", map[string]any{
		"channel":          channel,
		"receivers":        receivers,
		"reference_number": event.ReferenceNumber,
	})
	return nil
}
