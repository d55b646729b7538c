package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuUsecase defines the read-only catalog operations the ordering surface
// needs. Product mutations belong to the catalog administration, not here.
type MenuUsecase interface {
	// ListMenu retrieves available products, optionally filtered by category.
	ListMenu(ctx context.Context, category *entity.ProductCategory) ([]*entity.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
}
