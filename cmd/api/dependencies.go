package main

import (
	"context"
	"fmt"

	auditport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/audit"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/cache"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/notify"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/audit"
	cacheadapter "github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/notification"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// dependencies holds the optional external services and how to release them
type dependencies struct {
	redisStore *cacheadapter.RedisStore
	auditProbe *audit.BreakerSink
	cacheStore cache.Store
	auditSink  auditport.Sink
	publisher  notify.Publisher
	closers    []func() error
}

// Close releases every opened connection, last opened first
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, appLogger core.Logger) (*dependencies, error) {
	deps := &dependencies{}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		deps.closers = append(deps.closers, redisClient.Close)
		deps.redisStore = cacheadapter.NewRedisStore(redisClient, appLogger)

		if err := deps.redisStore.Ping(ctx); err != nil {
			appLogger.Warn("Redis not reachable at startup, cache reads will fall back to the store", map[string]any{
				"addr":  cfg.Redis.Addr,
				"error": err.Error(),
			})
		}
		if cfg.Cache.Enabled {
			deps.cacheStore = deps.redisStore
		}
	}

	sink, err := buildAuditSink(ctx, cfg, appLogger, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.auditSink = sink

	publisher, err := buildPublisher(cfg, appLogger, redisClient, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.publisher = notification.WithTimeout(publisher, cfg.Notification.Timeout)

	return deps, nil
}

func buildAuditSink(ctx context.Context, cfg *config.Config, appLogger core.Logger, deps *dependencies) (auditport.Sink, error) {
	if !cfg.Mongo.Enabled {
		appLogger.Info("Audit store disabled, audit entries go to the application log", nil)
		return audit.NewLogSink(appLogger), nil
	}

	client, collection, err := audit.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, cfg.Mongo.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect audit store: %w", err)
	}
	deps.closers = append(deps.closers, func() error { return disconnectMongo(client) })

	mongoSink := audit.NewMongoSink(collection, cfg.Mongo.Timeout, appLogger)
	deps.auditProbe = audit.NewBreakerSink(mongoSink, audit.DefaultBreakerConfig(), appLogger)
	return deps.auditProbe, nil
}

func disconnectMongo(client *mongo.Client) error {
	return client.Disconnect(context.Background())
}

func buildPublisher(cfg *config.Config, appLogger core.Logger, redisClient *redis.Client, deps *dependencies) (notify.Publisher, error) {
	switch cfg.Notification.Driver {
	case config.NotificationDriverRedis:
		return notification.NewRedisPublisher(redisClient, cfg.Notification.ChannelPrefix, appLogger), nil
	case config.NotificationDriverAMQP:
		publisher, err := notification.DialAMQP(cfg.Notification.AMQPURL, cfg.Notification.Exchange, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect notification broker: %w", err)
		}
		deps.closers = append(deps.closers, publisher.Close)
		return publisher, nil
	default:
		return notification.NoopPublisher{}, nil
	}
}
