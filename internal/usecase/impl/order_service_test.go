package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	mockUC "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	loyaltyUC   *mockUC.MockLoyaltyUsecase
}

func createTestOrderService(t *testing.T) *orderServiceFixture {
	t.Helper()

	fx := &orderServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		loyaltyUC:   mockUC.NewMockLoyaltyUsecase(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		TxManager:   fx.txManager,
		OrderRepo:   fx.orderRepo,
		ProductRepo: fx.productRepo,
		UserRepo:    fx.userRepo,
		LoyaltyUC:   fx.loyaltyUC,
		Config:      newTestConfig(),
	})

	return fx
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	noodlesID := uuid.New()
	teaID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{noodlesID, teaID}).
		Return([]*entity.Product{
			{ID: noodlesID, Name: "Beef Noodles", Price: decimal.NewFromInt(120), IsAvailable: true},
			{ID: teaID, Name: "Milk Tea", Price: decimal.NewFromFloat(35.5), IsAvailable: true},
		}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: userID,
		Items: []usecase.OrderItemInput{
			{ProductID: noodlesID, Quantity: 2, Instructions: "less spicy"},
			{ProductID: teaID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(275.5)))
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	// Line prices are snapshots of the catalog at placement time.
	assert.Equal(t, "Beef Noodles", order.Lines[0].ProductName)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, order.Lines[0].Subtotal.Equal(decimal.NewFromInt(240)))
	assert.Equal(t, "less spicy", order.Lines[0].Instructions)
	for _, line := range order.Lines {
		assert.Equal(t, order.ID, line.OrderID)
	}
}

func TestOrderService_PlaceOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  nil,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_AggregatesItemProblems(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items: []usecase.OrderItemInput{
			{ProductID: uuid.Nil, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 11},
		},
	})

	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "item 0: product id is required")
	assert.Contains(t, appErr.Details(), "item 1: quantity must be between 1 and 10")
}

func TestOrderService_PlaceOrder_UserNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: userID,
		Items:  []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOrderService_PlaceOrder_ReportsAllMissingProducts(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	knownID := uuid.New()
	missingA := uuid.New()
	missingB := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{knownID, missingA, missingB}).
		Return([]*entity.Product{
			{ID: knownID, Name: "Curry Rice", Price: decimal.NewFromInt(90), IsAvailable: true},
		}, nil)

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: userID,
		Items: []usecase.OrderItemInput{
			{ProductID: knownID, Quantity: 1},
			{ProductID: missingA, Quantity: 1},
			{ProductID: missingB, Quantity: 1},
		},
	})

	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), missingA.String())
	assert.Contains(t, appErr.Details(), missingB.String())
}

func TestOrderService_PlaceOrder_UnavailableProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{
			{ID: productID, Name: "Seasonal Soup", Price: decimal.NewFromInt(60), IsAvailable: false},
		}, nil)

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: userID,
		Items:  []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrProductUnavailable)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "Seasonal Soup")
}

func TestOrderService_PlaceOrder_RetriesOrderNumberCollision(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{
			{ID: productID, Name: "Fried Rice", Price: decimal.NewFromInt(80), IsAvailable: true},
		}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrderNumber).Once()
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		UserID: userID,
		Items:  []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("shipped"))

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:            orderID,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)
	txOrderRepo.EXPECT().Update(ctx, existing).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusPreparing)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	assert.Nil(t, order.CompletedAt)
}

func TestOrderService_UpdateOrderStatus_SelfTransitionIsNoOp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	updatedAt := time.Now().Add(-time.Hour)
	existing := &entity.Order{
		ID:        orderID,
		Status:    entity.OrderStatusPreparing,
		UpdatedAt: updatedAt,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusPreparing)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	assert.Equal(t, updatedAt, order.UpdatedAt)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, Status: entity.OrderStatusPending}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusReady)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_UpdateOrderStatus_FinalizedOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{ID: orderID, Status: entity.OrderStatusCancelled}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusPreparing)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderFinalized)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusPreparing)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_CompletionAccruesPoints(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	existing := &entity.Order{
		ID:            orderID,
		OrderNumber:   "ORD-20260901-0042",
		UserID:        userID,
		TotalAmount:   decimal.NewFromInt(100),
		Status:        entity.OrderStatusReady,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)

	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	// 20 of the 100 were paid with points; accrual nets them out: (100-20) * 0.10 = 8.
	txPaymentRepo.EXPECT().
		SumCompletedLoyaltyAmount(ctx, orderID).
		Return(decimal.NewFromInt(20), nil)

	fx.loyaltyUC.EXPECT().
		AccruePoints(ctx, factory, mock.MatchedBy(func(input usecase.AccrualInput) bool {
			return input.UserID == userID &&
				input.Points.Equal(decimal.NewFromInt(8)) &&
				input.OrderID != nil && *input.OrderID == orderID
		})).
		Return(&entity.LoyaltyTransaction{ID: uuid.New()}, nil)

	txOrderRepo.EXPECT().Update(ctx, existing).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
}

func TestOrderService_UpdateOrderStatus_AccruesTenPercentOfTotal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	existing := &entity.Order{
		ID:            orderID,
		OrderNumber:   "ORD-20260901-0007",
		UserID:        userID,
		TotalAmount:   decimal.NewFromInt(100),
		Status:        entity.OrderStatusReady,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)

	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)
	txPaymentRepo.EXPECT().
		SumCompletedLoyaltyAmount(ctx, orderID).
		Return(decimal.Zero, nil)

	fx.loyaltyUC.EXPECT().
		AccruePoints(ctx, factory, mock.MatchedBy(func(input usecase.AccrualInput) bool {
			return input.Points.Equal(decimal.NewFromInt(10))
		})).
		Return(&entity.LoyaltyTransaction{ID: uuid.New()}, nil)

	txOrderRepo.EXPECT().Update(ctx, existing).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCompleted)

	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_RepeatedCompletionDoesNotReaccrue(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	completedAt := time.Now().Add(-time.Minute)
	existing := &entity.Order{
		ID:            orderID,
		UserID:        uuid.New(),
		TotalAmount:   decimal.NewFromInt(100),
		Status:        entity.OrderStatusCompleted,
		PaymentStatus: entity.PaymentStatusPaid,
		CompletedAt:   &completedAt,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	// A retried completion is a self-transition no-op: no update, no second
	// ledger entry, CompletedAt untouched.
	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCompleted)

	require.NoError(t, err)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, completedAt, *order.CompletedAt)
}

func TestOrderService_UpdateOrderStatus_NoAccrualForPointsFundedOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:            orderID,
		UserID:        uuid.New(),
		TotalAmount:   decimal.NewFromInt(50),
		Status:        entity.OrderStatusReady,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)

	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	// Fully points-funded: the accrual base is zero and no ledger entry appears.
	txPaymentRepo.EXPECT().
		SumCompletedLoyaltyAmount(ctx, orderID).
		Return(decimal.NewFromInt(50), nil)

	txOrderRepo.EXPECT().Update(ctx, existing).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	existing := &entity.Order{
		ID:            orderID,
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		Notes:         "no cilantro",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)
	txOrderRepo.EXPECT().Update(ctx, existing).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.CancelOrder(ctx, orderID, userID, "class ran late")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, order.PaymentStatus)
	assert.Equal(t, "no cilantro\nCancelled: class ran late", order.Notes)
}

func TestOrderService_CancelOrder_OwnershipViolation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:     orderID,
		UserID: uuid.New(),
		Status: entity.OrderStatusPending,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.CancelOrder(ctx, orderID, uuid.New(), "")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_CancelOrder_CompletedOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	existing := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Status: entity.OrderStatusCompleted,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.CancelOrder(ctx, orderID, userID, "")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrCancelCompletedOrder)
}

func TestOrderService_CancelOrder_AlreadyCancelled(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	existing := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Status: entity.OrderStatusCancelled,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(existing, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := fx.service.CancelOrder(ctx, orderID, userID, "")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyCancelled)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetUserOrders_NormalizesPaging(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	fx.orderRepo.EXPECT().
		FindByUser(ctx, userID, 1, 20).
		Return(expected, nil)

	orders, err := fx.service.GetUserOrders(ctx, userID, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
