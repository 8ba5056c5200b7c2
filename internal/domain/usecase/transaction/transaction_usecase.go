package transaction

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/usecase/ownership"
)

// TransactionUseCase handles owner-scoped transaction operations
type TransactionUseCase struct {
	transactionRepo persistence.TransactionRepository
	categoryRepo    persistence.CategoryRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase
func NewTransactionUseCase(
	transactionRepo persistence.TransactionRepository,
	categoryRepo persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// List returns all transactions owned by userID
func (u *TransactionUseCase) List(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return u.transactionRepo.ListByUser(ctx, userID)
}

// Create inserts a transaction owned by userID. A supplied category ID must
// reference a category owned by the same user; a foreign or absent category
// answers ErrCategoryNotFound.
func (u *TransactionUseCase) Create(ctx context.Context, userID uint64, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(
		userID,
		input.Venue,
		input.Amount,
		input.Comments,
		input.CategoryID,
		input.Date,
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if tx.CategoryID != nil {
		if err := u.ownedCategory(ctx, userID, *tx.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := u.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	u.logger.Info("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"amount":         tx.Amount.StringFixed(2),
	})

	return tx, nil
}

// Get returns the transaction with the given ID when owned by userID
func (u *TransactionUseCase) Get(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	return u.owned(ctx, userID, id)
}

// Update applies a partial update to an owned transaction
func (u *TransactionUseCase) Update(ctx context.Context, userID, id uint64, patch entity.TransactionPatch) error {
	amount, err := patch.Validate()
	if err != nil {
		return err
	}

	if _, err := u.owned(ctx, userID, id); err != nil {
		return err
	}

	if patch.CategoryID != nil {
		if err := u.ownedCategory(ctx, userID, *patch.CategoryID); err != nil {
			return err
		}
	}

	update := persistence.TransactionUpdate{
		Venue:      patch.Venue,
		Amount:     amount,
		Comments:   patch.Comments,
		CategoryID: patch.CategoryID,
	}
	if err := u.transactionRepo.Update(ctx, id, update); err != nil {
		return err
	}

	u.logger.Info("Transaction updated", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})
	return nil
}

// Delete removes an owned transaction
func (u *TransactionUseCase) Delete(ctx context.Context, userID, id uint64) error {
	if _, err := u.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := u.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})
	return nil
}

// owned applies the ownership predicate for an id-addressed transaction
func (u *TransactionUseCase) owned(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	return ownership.Require(func() (*entity.Transaction, error) {
		return u.transactionRepo.GetByID(ctx, id)
	}, userID, errs.ErrTransactionNotFound)
}

// ownedCategory verifies a category reference against the caller
func (u *TransactionUseCase) ownedCategory(ctx context.Context, userID, categoryID uint64) error {
	_, err := ownership.Require(func() (*entity.Category, error) {
		return u.categoryRepo.GetByID(ctx, categoryID)
	}, userID, errs.ErrCategoryNotFound)
	return err
}
