// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyRepository defines the operations on the append-only loyalty ledger.
// Entries are never updated or deleted.
type LoyaltyRepository interface {
	// CreateTransaction appends a ledger entry.
	CreateTransaction(ctx context.Context, transaction *entity.LoyaltyTransaction) error

	// FindTransactionsByUser retrieves a page of a user's ledger entries,
	// newest first.
	FindTransactionsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.LoyaltyTransaction, error)

	// SumByKind sums the point deltas of a user's entries of one kind.
	SumByKind(ctx context.Context, userID uuid.UUID, kind entity.LoyaltyTransactionKind) (decimal.Decimal, error)
}
