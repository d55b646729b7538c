package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyTransactionModel mirrors the 'loyalty_transactions' table. Rows are
// append only; there is no update path through the repository.
type LoyaltyTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Points      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Kind        string          `gorm:"type:varchar(20);not null;index"`
	Description string          `gorm:"type:text;not null"`
	OrderID     *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyTransactionModel) TableName() string {
	return "loyalty_transactions"
}
