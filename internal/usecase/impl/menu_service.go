package impl

import (
	"context"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type menuService struct {
	productRepo repository.ProductRepository
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewMenuService creates a new menu service instance
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		productRepo: params.ProductRepo,
	}
}

// ListMenu returns available products, optionally filtered by category.
func (s *menuService) ListMenu(ctx context.Context, category *entity.ProductCategory) ([]*entity.Product, error) {
	if category != nil && !category.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product category: " + string(*category))
	}

	products, err := s.productRepo.FindAvailable(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	return products, nil
}

// GetProduct returns one product by id, available or not.
func (s *menuService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}
