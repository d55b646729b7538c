// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read-only catalog lookups. The ordering core
// never mutates products; the catalog owns them.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves all products matching the given IDs. Missing IDs
	// are simply absent from the result; callers detect and report them.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindAvailable retrieves available products, optionally filtered by
	// category, ordered by category then name.
	FindAvailable(ctx context.Context, category *entity.ProductCategory) ([]*entity.Product, error)
}
