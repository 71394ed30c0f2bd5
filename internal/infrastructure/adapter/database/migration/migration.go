package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// constraint is a named table constraint added after auto-migration
type constraint struct {
	model any
	table string
	name  string
	ddl   string
}

// ledgerConstraints are enforced by the store in addition to the repository guards
var ledgerConstraints = []constraint{
	{
		model: &model.Account{},
		table: "accounts",
		name:  "chk_accounts_balance_overdraft",
		ddl:   "CHECK (balance >= -overdraft_limit)",
	},
	{
		model: &model.Account{},
		table: "accounts",
		name:  "chk_accounts_overdraft_non_negative",
		ddl:   "CHECK (overdraft_limit >= 0)",
	},
	{
		model: &model.Transaction{},
		table: "transactions",
		name:  "chk_transactions_amount_positive",
		ddl:   "CHECK (amount > 0)",
	},
	{
		model: &model.Transaction{},
		table: "transactions",
		name:  "fk_transactions_from_account",
		ddl:   "FOREIGN KEY (from_account_id) REFERENCES accounts (id)",
	},
	{
		model: &model.Transaction{},
		table: "transactions",
		name:  "fk_transactions_to_account",
		ddl:   "FOREIGN KEY (to_account_id) REFERENCES accounts (id)",
	},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion. It is a no-op when already there.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("failed to create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to check current schema version: %w", err)
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"auto-migrate models", m.autoMigrateModels},
		{"add constraints", m.addConstraints},
		{"create indexes", m.advancedIndexMgr.CreateAdvancedIndexes},
		{"apply performance tweaks", m.advancedIndexMgr.CreatePerformanceTweaks},
	}
	for _, step := range steps {
		if err := step.run(db); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":            step.name,
				"error":           err.Error(),
				"current_version": currentVersion,
			})
			return fmt.Errorf("migration step %q failed: %w", step.name, err)
		}
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Ledger schema"); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version, empty for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	appliedAt := time.Now().UTC()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now().UTC()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

// autoMigrateModels creates or alters the ledger tables
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Account{},
		&model.Transaction{},
	)
}

// addConstraints adds each ledger constraint that does not exist yet
func (m *MigrationManager) addConstraints(db *gorm.DB) error {
	for _, c := range ledgerConstraints {
		if db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", c.table, c.name, c.ddl)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
		}
		m.logger.Debug("Added constraint", map[string]any{"constraint": c.name})
	}
	return nil
}
