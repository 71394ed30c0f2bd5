package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is where audit entries are written
const DefaultCollection = "logs"

// Collection is the subset of *mongo.Collection the sink needs
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// document is the stored shape of an audit entry
type document struct {
	UserID    string         `bson:"userId"`
	Action    string         `bson:"action"`
	IPAddress string         `bson:"ipAddress,omitempty"`
	UserAgent string         `bson:"userAgent,omitempty"`
	RequestID string         `bson:"requestId,omitempty"`
	Status    string         `bson:"status"`
	Metadata  map[string]any `bson:"metadata"`
	Timestamp time.Time      `bson:"timestamp"`
}

func toDocument(entry entity.AuditEntry) document {
	return document{
		UserID:    entry.UserID.String(),
		Action:    entry.Action,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		RequestID: entry.RequestID,
		Status:    string(entry.Status),
		Metadata:  entry.Metadata,
		Timestamp: entry.Timestamp,
	}
}

// MongoSink appends audit entries to a MongoDB collection
type MongoSink struct {
	collection Collection
	timeout    time.Duration
	logger     coreport.Logger
}

// NewMongoSink creates a new MongoSink. Each write is bounded by timeout when positive.
func NewMongoSink(collection Collection, timeout time.Duration, logger coreport.Logger) *MongoSink {
	return &MongoSink{
		collection: collection,
		timeout:    timeout,
		logger:     logger,
	}
}

// Record inserts entry. Entries are never updated.
func (s *MongoSink) Record(ctx context.Context, entry entity.AuditEntry) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.collection.InsertOne(ctx, toDocument(entry)); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	s.logger.Debug("Audit entry recorded", map[string]any{
		"user_id": entry.UserID.String(),
		"action":  entry.Action,
		"status":  string(entry.Status),
	})
	return nil
}

// ConnectMongo opens a client, verifies it and makes sure the audit indexes exist
func ConnectMongo(ctx context.Context, uri, database, collection string, timeout time.Duration) (*mongo.Client, *mongo.Collection, error) {
	connectCtx, cancel := context.WithTimeout(ctx, max(timeout, 5*time.Second))
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	if collection == "" {
		collection = DefaultCollection
	}
	coll := client.Database(database).Collection(collection)

	_, err = coll.Indexes().CreateMany(connectCtx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo create indexes: %w", err)
	}

	return client, coll, nil
}
