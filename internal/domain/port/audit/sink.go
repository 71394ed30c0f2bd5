package audit

import (
	"context"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
)

// Sink is an append-only store of audit entries. Entries are never read back by the core.
type Sink interface {
	Record(ctx context.Context, entry entity.AuditEntry) error
}
