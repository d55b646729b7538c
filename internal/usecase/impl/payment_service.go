package impl

import (
	"context"
	"fmt"
	"time"

	"canteen/config"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type paymentService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	loyaltyUC   usecase.LoyaltyUsecase
	config      *config.Config
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	LoyaltyUC   usecase.LoyaltyUsecase
	Config      *config.Config
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		loyaltyUC:   params.LoyaltyUC,
		config:      params.Config,
	}
}

// ProcessPayment runs one payment attempt against an order. Multiple attempts
// are legal; only a successful attempt covering the total marks the order Paid.
func (s *paymentService) ProcessPayment(ctx context.Context, input usecase.ProcessPaymentInput) (*entity.Payment, error) {
	if !input.Method.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown payment method: %s", input.Method))
	}

	order, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if order.Status == entity.OrderStatusCancelled {
		return nil, domainerrors.ErrOrderFinalized.WithDetails("order is already cancelled")
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, domainerrors.ErrOrderAlreadyPaid
	}

	switch input.Method {
	case entity.PaymentMethodCard:
		return s.processCardPayment(ctx, order)
	case entity.PaymentMethodCash:
		return s.recordCompletedPayment(ctx, order, entity.PaymentMethodCash, order.TotalAmount, "", 0)
	case entity.PaymentMethodLoyaltyPoints:
		return s.processLoyaltyPayment(ctx, order, input)
	case entity.PaymentMethodMixed:
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"mixed payments are recorded as separate loyalty and card attempts")
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails(
		fmt.Sprintf("unknown payment method: %s", input.Method))
}

// processCardPayment charges the external gateway and records the attempt,
// failed or completed. Gateway failures surface as a failed attempt plus a
// payment error; the order stays payable.
func (s *paymentService) processCardPayment(ctx context.Context, order *entity.Order) (*entity.Payment, error) {
	now := time.Now()
	payment := &entity.Payment{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Amount:    order.TotalAmount,
		Method:    entity.PaymentMethodCard,
		Status:    entity.PaymentAttemptProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment attempt")
	}

	ref, chargeErr := s.gateway.Charge(ctx, order.ID, order.TotalAmount)
	if chargeErr != nil {
		payment.Status = entity.PaymentAttemptFailed
		payment.FailureReason = chargeErr.Error()
		payment.UpdatedAt = time.Now()
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return nil, errors.Wrap(err, "failed to record failed payment")
		}

		return payment, domainerrors.ErrPaymentFailed.WithDetails(chargeErr.Error())
	}

	payment.Status = entity.PaymentAttemptCompleted
	payment.GatewayPaymentID = ref
	payment.UpdatedAt = time.Now()

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewPaymentRepository().Update(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to update payment attempt")
		}

		return s.markOrderPaid(ctx, factory, order.ID)
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// processLoyaltyPayment redeems points through the ledger and records the
// resulting discount as a payment attempt. If the discount does not cover the
// total, the order stays Pending for a follow-up attempt.
func (s *paymentService) processLoyaltyPayment(ctx context.Context, order *entity.Order, input usecase.ProcessPaymentInput) (*entity.Payment, error) {
	orderID := order.ID
	redeemed, err := s.loyaltyUC.RedeemPoints(ctx, input.UserID, input.Points, &orderID)
	if err != nil {
		return nil, err
	}

	payment, err := s.recordCompletedPayment(ctx, order, entity.PaymentMethodLoyaltyPoints,
		redeemed.DiscountAmount, "", input.Points)
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// recordCompletedPayment persists an immediately-completed attempt and marks
// the order Paid when the completed attempts cover the total.
func (s *paymentService) recordCompletedPayment(ctx context.Context, order *entity.Order, method entity.PaymentMethod, amount decimal.Decimal, gatewayRef string, pointsUsed int64) (*entity.Payment, error) {
	now := time.Now()
	payment := &entity.Payment{
		ID:                uuid.New(),
		OrderID:           order.ID,
		Amount:            amount,
		Method:            method,
		Status:            entity.PaymentAttemptCompleted,
		GatewayPaymentID:  gatewayRef,
		LoyaltyPointsUsed: pointsUsed,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		paymentRepo := factory.NewPaymentRepository()
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment attempt")
		}

		covered, err := s.completedTotal(ctx, paymentRepo, order.ID)
		if err != nil {
			return err
		}
		if covered.GreaterThanOrEqual(order.TotalAmount) {
			return s.markOrderPaid(ctx, factory, order.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ProcessRefund refunds every completed gateway payment of an order.
func (s *paymentService) ProcessRefund(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	payments, err := s.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by order")
	}

	var refunded []*entity.Payment
	for _, payment := range payments {
		if payment.Status != entity.PaymentAttemptCompleted || payment.GatewayPaymentID == "" {
			continue
		}

		ref, err := s.gateway.Refund(ctx, orderID, payment.GatewayPaymentID, payment.Amount)
		if err != nil {
			return refunded, domainerrors.ErrRefundFailed.WithDetails(err.Error())
		}

		payment.Status = entity.PaymentAttemptRefunded
		payment.GatewayRefundID = ref
		payment.UpdatedAt = time.Now()
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return refunded, errors.Wrap(err, "failed to record refund")
		}
		refunded = append(refunded, payment)
	}

	return refunded, nil
}

// GetOrderPayments lists the payment attempts of an order, oldest first.
func (s *paymentService) GetOrderPayments(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by order")
	}

	return payments, nil
}

// completedTotal sums the completed attempts of an order, loyalty included.
func (s *paymentService) completedTotal(ctx context.Context, paymentRepo repository.PaymentRepository, orderID uuid.UUID) (decimal.Decimal, error) {
	payments, err := paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to find payments by order")
	}

	total := decimal.Zero
	for _, payment := range payments {
		if payment.Status == entity.PaymentAttemptCompleted {
			total = total.Add(payment.Amount)
		}
	}

	return total, nil
}

// markOrderPaid flips the order's payment status inside the caller's transaction.
func (s *paymentService) markOrderPaid(ctx context.Context, factory repository.RepositoryFactory, orderID uuid.UUID) error {
	orderRepo := factory.NewOrderRepository()

	order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to lock order")
	}

	order.PaymentStatus = entity.PaymentStatusPaid
	order.UpdatedAt = time.Now()

	return errors.Wrap(orderRepo.Update(ctx, order), "failed to update order payment status")
}
