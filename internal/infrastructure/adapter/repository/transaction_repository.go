package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToTransactionEntity converts a transaction model to an entity.
// A row whose user was deleted has a NULL user_id; the entity carries the
// zero owner, which can never match an authenticated caller.
func modelToTransactionEntity(txModel *model.Transaction) *entity.Transaction {
	var userID uint64
	if txModel.UserID != nil {
		userID = *txModel.UserID
	}
	return &entity.Transaction{
		ID:         txModel.ID,
		Venue:      txModel.Venue,
		Amount:     txModel.Amount,
		Comments:   txModel.Comments,
		CategoryID: txModel.CategoryID,
		UserID:     userID,
		Date:       txModel.Date,
		CreatedAt:  txModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// ListByUser returns all transactions owned by userID, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&txModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, 0)
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, modelToTransactionEntity(&txModels[i]))
	}
	return transactions, nil
}

// GetByID retrieves a transaction by primary key, regardless of owner
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).First(&txModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}

	return modelToTransactionEntity(&txModel), nil
}

// Create inserts a new transaction and writes the generated ID back to the entity
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	userID := transaction.UserID
	txModel := model.Transaction{
		Venue:      transaction.Venue,
		Amount:     transaction.Amount,
		Comments:   transaction.Comments,
		CategoryID: transaction.CategoryID,
		UserID:     &userID,
		Date:       transaction.Date,
		CreatedAt:  transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, 0)
	}

	transaction.ID = txModel.ID
	return nil
}

// Update applies a partial update to the transaction with the given ID
func (r *TransactionRepository) Update(ctx context.Context, id uint64, update persistence.TransactionUpdate) error {
	updates := map[string]interface{}{}
	if update.Venue != nil {
		updates["venue"] = *update.Venue
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Comments != nil {
		updates["comments"] = *update.Comments
	}
	if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes the transaction with the given ID
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}
