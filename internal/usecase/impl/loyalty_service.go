package impl

import (
	"context"
	"fmt"
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

type loyaltyService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	loyaltyRepo repository.LoyaltyRepository
	config      *config.Config
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	LoyaltyRepo repository.LoyaltyRepository
	Config      *config.Config
}

// NewLoyaltyService creates a new loyalty ledger service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		loyaltyRepo: params.LoyaltyRepo,
		config:      params.Config,
	}
}

// AccruePoints increments the balance and appends an Earned entry through the
// caller's transaction-bound factory. This path is system-triggered, so it
// trusts the caller's arithmetic and only checks user existence.
func (s *loyaltyService) AccruePoints(ctx context.Context, factory repository.RepositoryFactory, input usecase.AccrualInput) (*entity.LoyaltyTransaction, error) {
	userRepo := factory.NewUserRepository()

	user, err := userRepo.FindByIDForUpdate(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to lock user")
	}

	balance := user.LoyaltyPoints.Add(input.Points)
	if err := userRepo.UpdateLoyaltyPoints(ctx, user.ID, balance); err != nil {
		return nil, errors.Wrap(err, "failed to update loyalty balance")
	}

	transaction := &entity.LoyaltyTransaction{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Points:      input.Points,
		Kind:        entity.LoyaltyKindEarned,
		Description: input.Description,
		OrderID:     input.OrderID,
		CreatedAt:   time.Now(),
	}
	if err := factory.NewLoyaltyRepository().CreateTransaction(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to append loyalty transaction")
	}

	return transaction, nil
}

// RedeemPoints exchanges points for a discount. The checks run in a fixed
// order: user exists, balance meets the floor, the request meets the floor,
// the balance covers the request.
func (s *loyaltyService) RedeemPoints(ctx context.Context, userID uuid.UUID, points int64, orderID *uuid.UUID) (*usecase.RedeemOutput, error) {
	if points <= 0 || points > s.config.Loyalty.MaxRedemption {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("points must be between 1 and %d", s.config.Loyalty.MaxRedemption))
	}

	var output *usecase.RedeemOutput
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to lock user")
		}

		floor := decimal.NewFromInt(s.config.Loyalty.MinRedemption)
		requested := decimal.NewFromInt(points)
		balance := user.LoyaltyPoints

		// The floor message fires whether the balance or the request is
		// below the minimum.
		if balance.LessThan(floor) || requested.LessThan(floor) {
			return domainerrors.ErrBelowMinimumRedemption.WithDetails(
				fmt.Sprintf("a minimum of %d points is required to redeem", s.config.Loyalty.MinRedemption))
		}
		if balance.LessThan(requested) {
			return domainerrors.ErrInsufficientPoints.WithDetails(
				fmt.Sprintf("current balance is %s points", balance.String()))
		}

		discount := requested.Mul(decimal.NewFromFloat(s.config.Loyalty.PointValue)).Round(2)
		remaining := balance.Sub(requested)

		if err := userRepo.UpdateLoyaltyPoints(ctx, user.ID, remaining); err != nil {
			return errors.Wrap(err, "failed to update loyalty balance")
		}

		transaction := &entity.LoyaltyTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Points:      requested.Neg(),
			Kind:        entity.LoyaltyKindRedeemed,
			Description: fmt.Sprintf("Redeemed %d points for a %s discount", points, discount.StringFixed(2)),
			OrderID:     orderID,
			CreatedAt:   time.Now(),
		}
		if err := factory.NewLoyaltyRepository().CreateTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to append loyalty transaction")
		}

		output = &usecase.RedeemOutput{
			PointsRedeemed:  points,
			DiscountAmount:  discount,
			RemainingPoints: remaining,
			Message:         fmt.Sprintf("Redeemed %d points for a %s discount", points, discount.StringFixed(2)),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// AwardPoints is the staff-initiated variant of accrual. Unlike accrual it is
// externally triggered, so inputs are validated and a description is required.
func (s *loyaltyService) AwardPoints(ctx context.Context, input usecase.AwardInput) (*entity.LoyaltyTransaction, error) {
	var problems []string
	if input.Points <= 0 {
		problems = append(problems, "points must be positive")
	}
	if strings.TrimSpace(input.Description) == "" {
		problems = append(problems, "description is required")
	}
	if len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	var transaction *entity.LoyaltyTransaction
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		transaction, err = s.AccruePoints(ctx, factory, usecase.AccrualInput{
			UserID:      input.UserID,
			Points:      decimal.NewFromInt(input.Points),
			Description: input.Description,
			OrderID:     input.OrderID,
		})

		return err
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetBalance returns the stored balance plus totals derived from the ledger.
func (s *loyaltyService) GetBalance(ctx context.Context, userID uuid.UUID) (*usecase.BalanceOutput, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	earned, err := s.loyaltyRepo.SumByKind(ctx, userID, entity.LoyaltyKindEarned)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum earned points")
	}

	redeemed, err := s.loyaltyRepo.SumByKind(ctx, userID, entity.LoyaltyKindRedeemed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum redeemed points")
	}

	return &usecase.BalanceOutput{
		CurrentPoints: user.LoyaltyPoints,
		TotalEarned:   earned,
		TotalRedeemed: redeemed.Abs(),
		PointsValue:   user.LoyaltyPoints.Mul(decimal.NewFromFloat(s.config.Loyalty.PointValue)).Round(2),
	}, nil
}

// GetTransactions retrieves a page of a user's ledger, newest first.
func (s *loyaltyService) GetTransactions(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.LoyaltyTransaction, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	transactions, err := s.loyaltyRepo.FindTransactionsByUser(ctx, userID, normalizePage(page), normalizePageSize(pageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty transactions")
	}

	return transactions, nil
}
