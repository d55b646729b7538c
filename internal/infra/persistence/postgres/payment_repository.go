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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment attempt.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// Update persists the mutable fields of a payment attempt.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Save(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment")
	}

	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByOrder retrieves all payment attempts for an order, oldest first.
func (repo *paymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&paymentModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by order")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// SumCompletedLoyaltyAmount sums the currency amounts of completed
// loyalty-point payments on an order.
func (repo *paymentRepository) SumCompletedLoyaltyAmount(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("SUM(amount)").
		Where("order_id = ? AND method = ? AND status = ?",
			orderID,
			string(entity.PaymentMethodLoyaltyPoints),
			string(entity.PaymentAttemptCompleted),
		).
		Scan(&sum).Error

	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed loyalty payments")
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:                data.ID,
		OrderID:           data.OrderID,
		Amount:            data.Amount,
		Method:            entity.PaymentMethod(data.Method),
		Status:            entity.PaymentAttemptStatus(data.Status),
		GatewayPaymentID:  data.GatewayPaymentID,
		GatewayRefundID:   data.GatewayRefundID,
		FailureReason:     data.FailureReason,
		LoyaltyPointsUsed: data.LoyaltyPointsUsed,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:                data.ID,
		OrderID:           data.OrderID,
		Amount:            data.Amount,
		Method:            string(data.Method),
		Status:            string(data.Status),
		GatewayPaymentID:  data.GatewayPaymentID,
		GatewayRefundID:   data.GatewayRefundID,
		FailureReason:     data.FailureReason,
		LoyaltyPointsUsed: data.LoyaltyPointsUsed,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
