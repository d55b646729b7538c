// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyTransactionKind classifies a ledger entry.
type LoyaltyTransactionKind string

const (
	LoyaltyKindEarned   LoyaltyTransactionKind = "earned"   // Accrual on order completion, or a staff award.
	LoyaltyKindRedeemed LoyaltyTransactionKind = "redeemed" // Points exchanged for a discount; negative delta.
	LoyaltyKindExpired  LoyaltyTransactionKind = "expired"  // Points removed by expiry; negative delta.
	LoyaltyKindAdjusted LoyaltyTransactionKind = "adjusted" // Manual correction; either sign.
)

// LoyaltyTransaction is an append-only ledger entry. The sum of all entries
// for a user equals that user's current balance; every write that appends an
// entry mutates the balance in the same database transaction.
type LoyaltyTransaction struct {
	ID          uuid.UUID              `json:"id"`          // The Global Unique Identifier (GUID) for the entry.
	UserID      uuid.UUID              `json:"user_id"`     // The ID of the user whose balance changed.
	Points      decimal.Decimal        `json:"points"`      // Signed point delta.
	Kind        LoyaltyTransactionKind `json:"kind"`        // What caused the change.
	Description string                 `json:"description"` // Human-readable description of the change.
	OrderID     *uuid.UUID             `json:"order_id"`    // Optional originating order.
	CreatedAt   time.Time              `json:"created_at"`  // Timestamp of when the entry was appended.
}
