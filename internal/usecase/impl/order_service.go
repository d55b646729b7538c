// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"canteen/config"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	loyaltyUC   usecase.LoyaltyUsecase
	config      *config.Config
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	LoyaltyUC   usecase.LoyaltyUsecase
	Config      *config.Config
}

// NewOrderService creates a new order lifecycle service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		loyaltyUC:   params.LoyaltyUC,
		config:      params.Config,
	}
}

// PlaceOrder validates the requested items against the catalog, snapshots
// prices into order lines and persists the new order atomically.
func (s *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := s.validateItems(input.Items); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	products, err := s.lookupProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Build the lines with price snapshots; later catalog price changes must
	// not affect this order.
	lines := make([]*entity.OrderLine, 0, len(input.Items))
	total := decimal.Zero
	for _, item := range input.Items {
		product := products[item.ProductID]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, &entity.OrderLine{
			ID:           uuid.New(),
			ProductID:    product.ID,
			ProductName:  product.Name,
			Quantity:     item.Quantity,
			UnitPrice:    product.Price,
			Subtotal:     subtotal,
			Instructions: item.Instructions,
		})
		total = total.Add(subtotal)
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Lines:         lines,
		TotalAmount:   total,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, line := range order.Lines {
		line.OrderID = order.ID
	}

	if err := s.createWithNumberRetry(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus applies one transition of the status table. The order is
// re-read under a row lock inside the transaction so the first-completion
// check cannot race a concurrent completion.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error) {
	if !target.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status: %s", target))
	}

	var updated *entity.Order
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		order, err := s.lockOrder(ctx, factory, orderID)
		if err != nil {
			return err
		}

		// Idempotent retry safety: a self-transition changes nothing, not
		// even UpdatedAt, and never re-triggers accrual.
		if order.Status == target {
			updated = order

			return nil
		}

		if err := s.applyTransition(ctx, factory, order, target, ""); err != nil {
			return err
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelOrder is the user-facing cancellation. Ownership is enforced and
// finalized orders are rejected with distinguishable errors before the
// generic transition check.
func (s *orderService) CancelOrder(ctx context.Context, orderID, userID uuid.UUID, reason string) (*entity.Order, error) {
	var updated *entity.Order
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		order, err := s.lockOrder(ctx, factory, orderID)
		if err != nil {
			return err
		}

		if order.UserID != userID {
			return domainerrors.ErrOrderOwnershipViolation.WithDetails("order belongs to another user")
		}
		if order.Status == entity.OrderStatusCompleted {
			return domainerrors.ErrCancelCompletedOrder.WithDetails("cannot cancel completed order")
		}
		if order.Status == entity.OrderStatusCancelled {
			return domainerrors.ErrOrderAlreadyCancelled.WithDetails("order is already cancelled")
		}

		if err := s.applyTransition(ctx, factory, order, entity.OrderStatusCancelled, reason); err != nil {
			return err
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetOrder retrieves a single order with its lines.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// GetUserOrders retrieves a page of a user's orders, newest first.
func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID, normalizePage(page), normalizePageSize(pageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// validateItems aggregates every input problem into one validation error
// instead of short-circuiting on the first.
func (s *orderService) validateItems(items []usecase.OrderItemInput) error {
	var problems []string
	if len(items) == 0 {
		problems = append(problems, "order must contain at least one item")
	}

	maxQty := s.config.Order.MaxQuantity
	for i, item := range items {
		if item.ProductID == uuid.Nil {
			problems = append(problems, fmt.Sprintf("item %d: product id is required", i))
		}
		if item.Quantity < 1 || item.Quantity > maxQty {
			problems = append(problems, fmt.Sprintf("item %d: quantity must be between 1 and %d", i, maxQty))
		}
	}

	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}

// lookupProducts fetches every referenced product and reports all missing ids
// and all unavailable products at once.
func (s *orderService) lookupProducts(ctx context.Context, items []usecase.OrderItemInput) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrProductNotFound.WithDetails(
			fmt.Sprintf("products not found: %s", strings.Join(missing, ", ")))
	}

	var unavailable []string
	for _, id := range ids {
		if !byID[id].IsAvailable {
			unavailable = append(unavailable, byID[id].Name)
		}
	}
	if len(unavailable) > 0 {
		return nil, domainerrors.ErrProductUnavailable.WithDetails(
			fmt.Sprintf("products currently unavailable: %s", strings.Join(unavailable, ", ")))
	}

	return byID, nil
}

// createWithNumberRetry persists the order, regenerating the order number on
// a uniqueness collision instead of surfacing it to the caller.
func (s *orderService) createWithNumberRetry(ctx context.Context, order *entity.Order) error {
	retries := s.config.Order.NumberRetries

	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		order.OrderNumber = generateOrderNumber(order.CreatedAt)
		err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewOrderRepository().Create(ctx, order)
		})
		if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			return domainerrors.ErrOrderCreationFailed.WithDetails("could not allocate a unique order number")
		}

		return errors.Wrap(err, "failed to create order")
	}

	return nil
}

// lockOrder re-reads the order under FOR UPDATE through the transaction-bound
// repository, translating the not-found sentinel.
func (s *orderService) lockOrder(ctx context.Context, factory repository.RepositoryFactory, orderID uuid.UUID) (*entity.Order, error) {
	order, err := factory.NewOrderRepository().FindByIDForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return order, nil
}

// applyTransition mutates the order for an already-locked row. The caller has
// ruled out the self-transition; reason is only read when entering Cancelled.
func (s *orderService) applyTransition(ctx context.Context, factory repository.RepositoryFactory, order *entity.Order, target entity.OrderStatus, reason string) error {
	if order.Status.IsTerminal() {
		return domainerrors.ErrOrderFinalized.WithDetails(
			fmt.Sprintf("order is already %s", order.Status))
	}
	if !order.Status.CanTransitionTo(target) {
		return domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot transition from %s to %s", order.Status, target))
	}

	now := time.Now()
	order.Status = target
	order.UpdatedAt = now

	switch target {
	case entity.OrderStatusCompleted:
		// The locked row still said previous != Completed, so this is the
		// first completion; accrual runs in the same transaction.
		order.CompletedAt = &now
		if order.PaymentStatus == entity.PaymentStatusPending {
			order.PaymentStatus = entity.PaymentStatusPaid
		}
		if err := s.accrueForOrder(ctx, factory, order); err != nil {
			return err
		}
	case entity.OrderStatusCancelled:
		order.PaymentStatus = entity.PaymentStatusRefunded
		if reason != "" {
			if order.Notes != "" {
				order.Notes += "\n"
			}
			order.Notes += "Cancelled: " + reason
		}
	case entity.OrderStatusPending, entity.OrderStatusPreparing, entity.OrderStatusReady:
		// Kitchen progress only; nothing beyond the status itself changes.
	}

	if err := factory.NewOrderRepository().Update(ctx, order); err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

// accrueForOrder computes the completion accrual: a fixed share of the order
// total net of amounts already paid with loyalty points, so points-funded
// purchases do not earn points on themselves.
func (s *orderService) accrueForOrder(ctx context.Context, factory repository.RepositoryFactory, order *entity.Order) error {
	loyaltyPaid, err := factory.NewPaymentRepository().SumCompletedLoyaltyAmount(ctx, order.ID)
	if err != nil {
		return errors.Wrap(err, "failed to sum loyalty payments")
	}

	base := order.TotalAmount.Sub(loyaltyPaid)
	if base.IsNegative() {
		base = decimal.Zero
	}

	points := base.Mul(decimal.NewFromFloat(s.config.Loyalty.AccrualRate)).Round(2)
	if !points.IsPositive() {
		return nil
	}

	orderID := order.ID
	_, err = s.loyaltyUC.AccruePoints(ctx, factory, usecase.AccrualInput{
		UserID:      order.UserID,
		Points:      points,
		Description: fmt.Sprintf("Points earned from order %s", order.OrderNumber),
		OrderID:     &orderID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to accrue loyalty points")
	}

	return nil
}

// generateOrderNumber builds a human-readable number from the order date and
// a random 4-digit suffix. Collisions are handled by the caller's retry loop.
func generateOrderNumber(createdAt time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", createdAt.Format("20060102"), rand.IntN(10000))
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 || pageSize > 100 {
		return 20
	}

	return pageSize
}
