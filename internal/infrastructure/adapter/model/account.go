package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents the database model for ledger accounts
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountNumber  string    `gorm:"size:20;not null;uniqueIndex"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountType    string    `gorm:"size:20;not null;default:checking"`
	Balance        int64     `gorm:"not null;default:0"` // minor units
	Currency       string    `gorm:"size:3;not null;default:USD"`
	Status         string    `gorm:"size:20;not null;default:active"`
	OverdraftLimit int64     `gorm:"not null;default:0"` // minor units
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
