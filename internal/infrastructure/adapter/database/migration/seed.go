package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Demo holders and accounts for local environments. IDs are fixed so that
// tokens minted for development keep working across restarts.
var (
	demoAliceID = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	demoBobID   = uuid.MustParse("22222222-2222-4222-8222-222222222222")
)

func demoUsers(now time.Time) []model.User {
	return []model.User{
		{ID: demoAliceID, FirstName: "Alice", LastName: "Moreau", Email: "alice@credora.test", CreatedAt: now, UpdatedAt: now},
		{ID: demoBobID, FirstName: "Bob", LastName: "Okafor", Email: "bob@credora.test", CreatedAt: now, UpdatedAt: now},
	}
}

func demoAccounts(now time.Time) []model.Account {
	account := func(id, number string, owner uuid.UUID, accountType string, balance, overdraft int64, currency string) model.Account {
		return model.Account{
			ID:             uuid.MustParse(id),
			AccountNumber:  number,
			UserID:         owner,
			AccountType:    accountType,
			Balance:        balance,
			Currency:       currency,
			Status:         string(entity.AccountActive),
			OverdraftLimit: overdraft,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	return []model.Account{
		account("a1111111-0000-4000-8000-000000000001", "1000000001", demoAliceID, "checking", 500_000, 10_000, "USD"),
		account("a1111111-0000-4000-8000-000000000002", "1000000002", demoAliceID, "savings", 2_500_000, 0, "USD"),
		account("b2222222-0000-4000-8000-000000000001", "2000000001", demoBobID, "checking", 100_000, 0, "USD"),
		account("b2222222-0000-4000-8000-000000000002", "2000000002", demoBobID, "checking", 75_000, 0, "EUR"),
	}
}

// SeedDemoData inserts the demo holders and accounts. Existing rows are left untouched.
func (m *MigrationManager) SeedDemoData(ctx context.Context) error {
	now := time.Now().UTC()
	if m.timeProvider != nil {
		now = m.timeProvider.Now().UTC()
	}

	users := demoUsers(now)
	accounts := demoAccounts(now)

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&accounts).Error; err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		return nil
	})
	if err != nil {
		m.logger.Error("Failed to seed demo data", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Demo data seeded", map[string]any{
		"users":    len(users),
		"accounts": len(accounts),
	})
	return nil
}
