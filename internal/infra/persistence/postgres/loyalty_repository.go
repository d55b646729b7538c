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

// loyaltyRepository implements the domain.LoyaltyRepository interface.
// The ledger is append only; this type intentionally has no update or
// delete methods.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

// CreateTransaction appends a ledger entry.
func (repo *loyaltyRepository) CreateTransaction(ctx context.Context, transaction *entity.LoyaltyTransaction) error {
	transactionM := fromLoyaltyTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt

	return nil
}

// FindTransactionsByUser retrieves a page of a user's ledger entries, newest first.
func (repo *loyaltyRepository) FindTransactionsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.LoyaltyTransaction, error) {
	var transactionModels []*model.LoyaltyTransactionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&transactionModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty transactions by user")
	}

	transactions := make([]*entity.LoyaltyTransaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toLoyaltyTransactionDomain(transactionM))
	}

	return transactions, nil
}

// SumByKind sums the point deltas of a user's entries of one kind.
func (repo *loyaltyRepository) SumByKind(ctx context.Context, userID uuid.UUID, kind entity.LoyaltyTransactionKind) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := repo.db.WithContext(ctx).
		Model(&model.LoyaltyTransactionModel{}).
		Select("SUM(points)").
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Scan(&sum).Error

	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum loyalty transactions by kind")
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// --- Mapper Functions ---

// toLoyaltyTransactionDomain converts a GORM LoyaltyTransactionModel to a domain entity.
func toLoyaltyTransactionDomain(data *model.LoyaltyTransactionModel) *entity.LoyaltyTransaction {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyTransaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Kind:        entity.LoyaltyTransactionKind(data.Kind),
		Description: data.Description,
		OrderID:     data.OrderID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromLoyaltyTransactionDomain converts a domain entity to a GORM LoyaltyTransactionModel.
func fromLoyaltyTransactionDomain(data *entity.LoyaltyTransaction) *model.LoyaltyTransactionModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyTransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Kind:        string(data.Kind),
		Description: data.Description,
		OrderID:     data.OrderID,
		CreatedAt:   data.CreatedAt,
	}
}
