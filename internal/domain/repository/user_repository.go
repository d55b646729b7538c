// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user while holding a row lock until the
	// surrounding transaction ends, so balance updates do not race.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateLoyaltyPoints sets the user's loyalty balance to the given value.
	UpdateLoyaltyPoints(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
