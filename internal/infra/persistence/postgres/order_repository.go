// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WithDetails("invalid user or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WithDetails("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its lines by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate retrieves an order by ID with a row-level write lock.
// It must run inside a transaction; the lock is what makes a later status
// check on the fresh row trustworthy.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines").
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID for update")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a page of a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orderModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update saves the order header. Lines are immutable after creation and are
// deliberately not touched here.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).
		Omit("Lines").
		Save(orderM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, &entity.OrderLine{
			ID:           lineM.ID,
			OrderID:      lineM.OrderID,
			ProductID:    lineM.ProductID,
			ProductName:  lineM.ProductName,
			UnitPrice:    lineM.UnitPrice,
			Quantity:     lineM.Quantity,
			Subtotal:     lineM.Subtotal,
			Instructions: lineM.Instructions,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		Lines:         lines,
		TotalAmount:   data.TotalAmount,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod: data.PaymentMethod,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		CompletedAt:   data.CompletedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.OrderLineModel{
			ID:           line.ID,
			OrderID:      line.OrderID,
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
			Subtotal:     line.Subtotal,
			Instructions: line.Instructions,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		OrderNumber:   data.OrderNumber,
		UserID:        data.UserID,
		Lines:         lines,
		TotalAmount:   data.TotalAmount,
		Status:        string(data.Status),
		PaymentStatus: string(data.PaymentStatus),
		PaymentMethod: data.PaymentMethod,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		CompletedAt:   data.CompletedAt,
	}
}
