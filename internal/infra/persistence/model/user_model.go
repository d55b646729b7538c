package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// LoyaltyPoints is the materialized balance; the ledger in loyalty_transactions
// is the source of truth and the two are only ever updated together.
type UserModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string          `gorm:"type:varchar(255);unique;not null"`
	Name          string          `gorm:"type:varchar(100)"`
	LoyaltyPoints decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`

	Orders              []OrderModel              `gorm:"foreignKey:UserID"`
	LoyaltyTransactions []LoyaltyTransactionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
