package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AccrualInput defines a system-triggered point accrual. The caller owns the
// arithmetic; only user existence is validated.
type AccrualInput struct {
	UserID      uuid.UUID
	Points      decimal.Decimal
	Description string
	OrderID     *uuid.UUID
}

// AwardInput defines a staff-initiated point award.
type AwardInput struct {
	UserID      uuid.UUID
	Points      int64
	Description string
	OrderID     *uuid.UUID
}

// --- Output DTOs ---

// RedeemOutput reports the result of a successful redemption.
type RedeemOutput struct {
	PointsRedeemed  int64           `json:"points_redeemed"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	RemainingPoints decimal.Decimal `json:"remaining_points"`
	Message         string          `json:"message"`
}

// BalanceOutput reports a user's balance. TotalEarned and TotalRedeemed are
// derived from the ledger at read time, not stored.
type BalanceOutput struct {
	CurrentPoints decimal.Decimal `json:"current_points"`
	TotalEarned   decimal.Decimal `json:"total_earned"`
	TotalRedeemed decimal.Decimal `json:"total_redeemed"`
	PointsValue   decimal.Decimal `json:"points_value"`
}

// LoyaltyUsecase defines the interface for the loyalty-point ledger.
type LoyaltyUsecase interface {
	// AccruePoints appends an Earned entry and increments the balance using
	// repositories from the given factory, so order completion can run the
	// accrual inside its own database transaction.
	AccruePoints(ctx context.Context, factory repository.RepositoryFactory, input AccrualInput) (*entity.LoyaltyTransaction, error)

	// RedeemPoints exchanges points for a discount, subject to the minimum
	// redemption floor and the user's balance.
	RedeemPoints(ctx context.Context, userID uuid.UUID, points int64, orderID *uuid.UUID) (*RedeemOutput, error)

	// AwardPoints is the staff-initiated variant of accrual; it validates
	// its inputs and requires a description.
	AwardPoints(ctx context.Context, input AwardInput) (*entity.LoyaltyTransaction, error)

	// GetBalance returns the current balance plus ledger-derived totals.
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceOutput, error)

	// GetTransactions retrieves a page of a user's ledger, newest first.
	GetTransactions(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.LoyaltyTransaction, error)
}
