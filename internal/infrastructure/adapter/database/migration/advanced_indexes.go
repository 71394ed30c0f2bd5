package migration

import (
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// index is a PostgreSQL-specific index the gorm tags cannot express
type index struct {
	name string
	ddl  string
}

var ledgerIndexes = []index{
	{
		// history pages are ordered newest first
		name: "idx_transactions_created_at_desc",
		ddl:  "CREATE INDEX IF NOT EXISTS idx_transactions_created_at_desc ON transactions (created_at DESC)",
	},
	{
		name: "idx_transactions_from_account_created",
		ddl:  "CREATE INDEX IF NOT EXISTS idx_transactions_from_account_created ON transactions (from_account_id, created_at DESC)",
	},
	{
		name: "idx_transactions_to_account_created",
		ddl:  "CREATE INDEX IF NOT EXISTS idx_transactions_to_account_created ON transactions (to_account_id, created_at DESC)",
	},
	{
		name: "idx_accounts_user_open",
		ddl:  "CREATE INDEX IF NOT EXISTS idx_accounts_user_open ON accounts (user_id, created_at DESC) WHERE status <> 'closed'",
	},
}

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates the history and account lookup indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(db *gorm.DB) error {
	for _, idx := range ledgerIndexes {
		if err := db.Exec(idx.ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(ledgerIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(db *gorm.DB) error {
	// accounts rows are updated in place on every transfer
	if err := db.Exec("ALTER TABLE accounts SET (fillfactor = 80)").Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{
			"error": err.Error(),
		})
	}

	// transactions are append-only
	if err := db.Exec("ALTER TABLE transactions SET (fillfactor = 100)").Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
