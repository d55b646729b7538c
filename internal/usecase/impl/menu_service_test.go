package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_ListMenu_AllCategories(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewMenuService(MenuServiceParams{ProductRepo: productRepo})

	ctx := context.Background()
	expected := []*entity.Product{
		{ID: uuid.New(), Name: "Beef Noodles", Price: decimal.NewFromInt(120), IsAvailable: true},
	}

	productRepo.EXPECT().
		FindAvailable(ctx, (*entity.ProductCategory)(nil)).
		Return(expected, nil)

	products, err := service.ListMenu(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestMenuService_ListMenu_FilteredByCategory(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewMenuService(MenuServiceParams{ProductRepo: productRepo})

	ctx := context.Background()
	category := entity.CategoryDrink
	expected := []*entity.Product{
		{ID: uuid.New(), Name: "Milk Tea", Category: entity.CategoryDrink, IsAvailable: true},
	}

	productRepo.EXPECT().
		FindAvailable(ctx, &category).
		Return(expected, nil)

	products, err := service.ListMenu(ctx, &category)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestMenuService_ListMenu_UnknownCategory(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewMenuService(MenuServiceParams{ProductRepo: productRepo})

	category := entity.ProductCategory("sushi")

	products, err := service.ListMenu(context.Background(), &category)

	assert.Nil(t, products)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuService_GetProduct_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewMenuService(MenuServiceParams{ProductRepo: productRepo})

	ctx := context.Background()
	productID := uuid.New()
	expected := &entity.Product{ID: productID, Name: "Curry Rice"}

	productRepo.EXPECT().FindByID(ctx, productID).Return(expected, nil)

	product, err := service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestMenuService_GetProduct_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewMenuService(MenuServiceParams{ProductRepo: productRepo})

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, productID)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
