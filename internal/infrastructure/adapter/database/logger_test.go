package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	tests := []struct {
		name          string
		elapsed       time.Duration
		err           error
		expectedLevel zapcore.Level
		expectedMsg   string
	}{
		{name: "Regular query", elapsed: time.Millisecond, expectedLevel: zapcore.DebugLevel, expectedMsg: "SQL Query"},
		{name: "Slow query", elapsed: time.Second, expectedLevel: zapcore.WarnLevel, expectedMsg: "Slow SQL Query"},
		{name: "Failed query", elapsed: time.Millisecond, err: errors.New("boom"), expectedLevel: zapcore.ErrorLevel, expectedMsg: "SQL Error"},
		{name: "Missing row", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound, expectedLevel: zapcore.DebugLevel, expectedMsg: "SQL Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zcore, logs := observer.New(zapcore.DebugLevel)
			dbLogger := NewDatabaseLogger(logger.NewFromCore(zcore, core.LogLevelDebug), nil, "info", 200*time.Millisecond)

			dbLogger.Trace(context.Background(), time.Now().Add(-tt.elapsed), func() (string, int64) {
				return `SELECT * FROM "accounts" WHERE id = 1`, 1
			}, tt.err)

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
				assert.Equal(t, tt.expectedMsg, entries[0].Message)
				assert.Equal(t, "accounts", entries[0].ContextMap()["table"])
				assert.Equal(t, "SELECT", entries[0].ContextMap()["type"])
			}
		})
	}
}

func TestDatabaseLogger_Silent(t *testing.T) {
	zcore, logs := observer.New(zapcore.DebugLevel)
	dbLogger := NewDatabaseLogger(logger.NewFromCore(zcore, core.LogLevelDebug), nil, "silent", 0)

	dbLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Zero(t, logs.Len())
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "transactions", extractTableName(`INSERT INTO "transactions" ("id") VALUES ($1)`))
	assert.Equal(t, "accounts", extractTableName(`UPDATE accounts SET balance = balance + $1`))
	assert.Equal(t, "", extractTableName(`SET LOCAL lock_timeout = '5ms'`))
}
