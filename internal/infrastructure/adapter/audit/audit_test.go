package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	auditmocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/audit"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeCollection struct {
	docs        []interface{}
	err         error
	hadDeadline bool
}

func (f *fakeCollection) InsertOne(ctx context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, doc)
	return &mongo.InsertOneResult{InsertedID: len(f.docs)}, nil
}

func sampleEntry() entity.AuditEntry {
	return entity.AuditEntry{
		UserID:    uuid.MustParse("7f1c2d3e-0000-4000-8000-000000000001"),
		Action:    entity.ActionTransfer,
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8",
		RequestID: "req-1",
		Status:    entity.AuditSuccess,
		Metadata:  map[string]any{"amount": "10.00", "referenceNumber": "TXNABC"},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestMongoSink_Record(t *testing.T) {
	coll := &fakeCollection{}
	sink := NewMongoSink(coll, time.Second, logger.NewNoopLogger())

	require.NoError(t, sink.Record(context.Background(), sampleEntry()))

	require.Len(t, coll.docs, 1)
	doc := coll.docs[0].(document)
	assert.Equal(t, "7f1c2d3e-0000-4000-8000-000000000001", doc.UserID)
	assert.Equal(t, "transfer", doc.Action)
	assert.Equal(t, "success", doc.Status)
	assert.Equal(t, "TXNABC", doc.Metadata["referenceNumber"])
	assert.True(t, coll.hadDeadline)
}

func TestMongoSink_RecordFailure(t *testing.T) {
	coll := &fakeCollection{err: errors.New("server selection timeout")}
	sink := NewMongoSink(coll, 0, logger.NewNoopLogger())

	err := sink.Record(context.Background(), sampleEntry())

	assert.ErrorContains(t, err, "server selection timeout")
	assert.False(t, coll.hadDeadline)
}

func TestBreakerSink_OpensAfterConsecutiveFailures(t *testing.T) {
	next := auditmocks.NewMockSink(t)
	next.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("down")).Times(2)

	sink := NewBreakerSink(next, BreakerConfig{ConsecutiveFailures: 2, OpenTimeout: time.Minute, HalfOpenRequests: 1},
		logger.NewNoopLogger())

	assert.Error(t, sink.Record(context.Background(), sampleEntry()))
	assert.Error(t, sink.Record(context.Background(), sampleEntry()))

	err := sink.Record(context.Background(), sampleEntry())

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, sink.Ping(context.Background()), ErrAuditUnavailable)
}

func TestBreakerSink_PassesThrough(t *testing.T) {
	next := auditmocks.NewMockSink(t)
	next.EXPECT().Record(mock.Anything, sampleEntry()).Return(nil).Once()

	sink := NewBreakerSink(next, DefaultBreakerConfig(), logger.NewNoopLogger())

	assert.NoError(t, sink.Record(context.Background(), sampleEntry()))
	assert.NoError(t, sink.Ping(context.Background()))
}

func TestLogSink_Record(t *testing.T) {
	zcore, logs := observer.New(zapcore.DebugLevel)
	sink := NewLogSink(logger.NewFromCore(zcore, core.LogLevelDebug))

	require.NoError(t, sink.Record(context.Background(), sampleEntry()))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Audit", entry.Message)
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
}
