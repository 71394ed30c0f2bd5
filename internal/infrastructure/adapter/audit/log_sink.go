package audit

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
)

// LogSink writes audit entries to the application log. Used when no audit store is configured.
type LogSink struct {
	logger coreport.Logger
}

// NewLogSink creates a new LogSink
func NewLogSink(logger coreport.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Record logs entry at info level
func (s *LogSink) Record(_ context.Context, entry entity.AuditEntry) error {
	s.logger.Info("Audit", entry.LogFields())
	return nil
}
