package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	mockSvc "canteen/internal/mocks/service"
	mockUC "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixture struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentRepository
	gateway     *mockSvc.MockPaymentGateway
	loyaltyUC   *mockUC.MockLoyaltyUsecase
}

func createTestPaymentService(t *testing.T) *paymentServiceFixture {
	t.Helper()

	fx := &paymentServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		loyaltyUC:   mockUC.NewMockLoyaltyUsecase(t),
	}
	fx.service = NewPaymentService(PaymentServiceParams{
		TxManager:   fx.txManager,
		OrderRepo:   fx.orderRepo,
		PaymentRepo: fx.paymentRepo,
		Gateway:     fx.gateway,
		LoyaltyUC:   fx.loyaltyUC,
		Config:      newTestConfig(),
	})

	return fx
}

func TestPaymentService_ProcessPayment_UnknownMethod(t *testing.T) {
	fx := createTestPaymentService(t)

	payment, err := fx.service.ProcessPayment(context.Background(), usecase.ProcessPaymentInput{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Method:  entity.PaymentMethod("bitcoin"),
	})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_ProcessPayment_OrderNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodCash,
	})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_ProcessPayment_CancelledOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCancelled}, nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodCash,
	})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrOrderFinalized)
}

func TestPaymentService_ProcessPayment_AlreadyPaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:            orderID,
			Status:        entity.OrderStatusPreparing,
			PaymentStatus: entity.PaymentStatusPaid,
		}, nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodCard,
	})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyPaid)
}

func TestPaymentService_ProcessPayment_MixedMethodRejected(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:            orderID,
			Status:        entity.OrderStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
		}, nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodMixed,
	})

	assert.Nil(t, payment)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "separate loyalty and card attempts")
}

func TestPaymentService_ProcessPayment_Card_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		TotalAmount:   decimal.NewFromInt(150),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(payment *entity.Payment) bool {
			return payment.Status == entity.PaymentAttemptProcessing &&
				payment.Method == entity.PaymentMethodCard &&
				payment.Amount.Equal(decimal.NewFromInt(150))
		})).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, orderID, mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.NewFromInt(150))
		})).
		Return("pi_test_123", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	txPaymentRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(payment *entity.Payment) bool {
			return payment.Status == entity.PaymentAttemptCompleted &&
				payment.GatewayPaymentID == "pi_test_123"
		})).
		Return(nil)
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(order, nil)
	txOrderRepo.EXPECT().Update(ctx, order).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodCard,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentAttemptCompleted, payment.Status)
	assert.Equal(t, "pi_test_123", payment.GatewayPaymentID)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
}

func TestPaymentService_ProcessPayment_Card_GatewayFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		TotalAmount:   decimal.NewFromInt(150),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, orderID, mock.AnythingOfType("decimal.Decimal")).
		Return("", errors.New("card declined"))

	// The failed attempt is recorded; the order stays payable.
	fx.paymentRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(payment *entity.Payment) bool {
			return payment.Status == entity.PaymentAttemptFailed &&
				payment.FailureReason == "card declined"
		})).
		Return(nil)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodCard,
	})

	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	require.NotNil(t, payment)
	assert.Equal(t, entity.PaymentAttemptFailed, payment.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
}

func TestPaymentService_ProcessPayment_Cash_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		TotalAmount:   decimal.NewFromInt(80),
		Status:        entity.OrderStatusReady,
		PaymentStatus: entity.PaymentStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	var created *entity.Payment
	txPaymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		RunAndReturn(func(ctx context.Context, payment *entity.Payment) error {
			created = payment

			return nil
		})
	txPaymentRepo.EXPECT().
		FindByOrder(ctx, orderID).
		RunAndReturn(func(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
			return []*entity.Payment{created}, nil
		})
	txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(order, nil)
	txOrderRepo.EXPECT().Update(ctx, order).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  uuid.New(),
		Method:  entity.PaymentMethodCash,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentAttemptCompleted, payment.Status)
	assert.Equal(t, entity.PaymentMethodCash, payment.Method)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
}

func TestPaymentService_ProcessPayment_LoyaltyPoints_PartialCoverage(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		TotalAmount:   decimal.NewFromInt(100),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	fx.loyaltyUC.EXPECT().
		RedeemPoints(ctx, userID, int64(100), mock.MatchedBy(func(id *uuid.UUID) bool {
			return id != nil && *id == orderID
		})).
		Return(&usecase.RedeemOutput{
			PointsRedeemed: 100,
			DiscountAmount: decimal.NewFromInt(10),
		}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	factory.EXPECT().NewPaymentRepository().Return(txPaymentRepo)

	var created *entity.Payment
	txPaymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		RunAndReturn(func(ctx context.Context, payment *entity.Payment) error {
			created = payment

			return nil
		})
	// The 10 discount does not cover the 100 total, so the order is not
	// marked Paid and stays open for a follow-up attempt.
	txPaymentRepo.EXPECT().
		FindByOrder(ctx, orderID).
		RunAndReturn(func(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
			return []*entity.Payment{created}, nil
		})

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  userID,
		Method:  entity.PaymentMethodLoyaltyPoints,
		Points:  100,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentAttemptCompleted, payment.Status)
	assert.True(t, payment.Amount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(100), payment.LoyaltyPointsUsed)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
}

func TestPaymentService_ProcessPayment_LoyaltyPoints_RedeemFails(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:            orderID,
			TotalAmount:   decimal.NewFromInt(100),
			Status:        entity.OrderStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
		}, nil)

	fx.loyaltyUC.EXPECT().
		RedeemPoints(ctx, userID, int64(20), mock.AnythingOfType("*uuid.UUID")).
		Return(nil, domainerrors.ErrBelowMinimumRedemption)

	payment, err := fx.service.ProcessPayment(ctx, usecase.ProcessPaymentInput{
		OrderID: orderID,
		UserID:  userID,
		Method:  entity.PaymentMethodLoyaltyPoints,
		Points:  20,
	})

	assert.Nil(t, payment)
	assert.ErrorIs(t, err, domainerrors.ErrBelowMinimumRedemption)
}

func TestPaymentService_ProcessRefund_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCancelled}, nil)

	cardPayment := &entity.Payment{
		ID:               uuid.New(),
		OrderID:          orderID,
		Amount:           decimal.NewFromInt(150),
		Method:           entity.PaymentMethodCard,
		Status:           entity.PaymentAttemptCompleted,
		GatewayPaymentID: "pi_test_123",
	}
	failedPayment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: orderID,
		Method:  entity.PaymentMethodCard,
		Status:  entity.PaymentAttemptFailed,
	}
	cashPayment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: orderID,
		Amount:  decimal.NewFromInt(30),
		Method:  entity.PaymentMethodCash,
		Status:  entity.PaymentAttemptCompleted,
	}

	fx.paymentRepo.EXPECT().
		FindByOrder(ctx, orderID).
		Return([]*entity.Payment{cardPayment, failedPayment, cashPayment}, nil)

	fx.gateway.EXPECT().
		Refund(ctx, orderID, "pi_test_123", mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.NewFromInt(150))
		})).
		Return("re_test_456", nil)

	fx.paymentRepo.EXPECT().Update(ctx, cardPayment).Return(nil)

	refunded, err := fx.service.ProcessRefund(ctx, orderID)

	require.NoError(t, err)
	require.Len(t, refunded, 1)
	assert.Equal(t, entity.PaymentAttemptRefunded, refunded[0].Status)
	assert.Equal(t, "re_test_456", refunded[0].GatewayRefundID)
}

func TestPaymentService_ProcessRefund_GatewayError(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID}, nil)

	fx.paymentRepo.EXPECT().
		FindByOrder(ctx, orderID).
		Return([]*entity.Payment{{
			ID:               uuid.New(),
			OrderID:          orderID,
			Amount:           decimal.NewFromInt(150),
			Status:           entity.PaymentAttemptCompleted,
			GatewayPaymentID: "pi_test_123",
		}}, nil)

	fx.gateway.EXPECT().
		Refund(ctx, orderID, "pi_test_123", mock.AnythingOfType("decimal.Decimal")).
		Return("", errors.New("refund window closed"))

	refunded, err := fx.service.ProcessRefund(ctx, orderID)

	assert.Empty(t, refunded)
	assert.ErrorIs(t, err, domainerrors.ErrRefundFailed)
}

func TestPaymentService_GetOrderPayments(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	expected := []*entity.Payment{{ID: uuid.New(), OrderID: orderID}}

	fx.paymentRepo.EXPECT().FindByOrder(ctx, orderID).Return(expected, nil)

	payments, err := fx.service.GetOrderPayments(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, payments)
}
