// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the generated order number
	// collides with an existing one. Callers may regenerate and retry.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its lines atomically.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order with its lines while holding a
	// row lock until the surrounding transaction ends. Only meaningful when
	// called through a TransactionManager-bound repository.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a page of a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Order, error)

	// Update persists the mutable order fields (status, payment status,
	// notes, timestamps). Lines are immutable and are not touched.
	Update(ctx context.Context, order *entity.Order) error
}
