package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// CreateTransactionInput carries the fields accepted on transaction create.
// Amount stays a string until the entity constructor parses it.
type CreateTransactionInput struct {
	Venue      string
	Amount     string
	Comments   string
	CategoryID *uint64
	Date       *time.Time
}

// TransactionUseCase defines owner-scoped transaction operations with the
// same not-found semantics as CategoryUseCase.
type TransactionUseCase interface {
	// List returns all transactions owned by userID
	List(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// Create inserts a transaction owned by userID and returns the created
	// row. A supplied category ID must reference a category owned by the
	// same user.
	Create(ctx context.Context, userID uint64, input CreateTransactionInput) (*entity.Transaction, error)

	// Get returns the transaction with the given ID when owned by userID
	Get(ctx context.Context, userID, id uint64) (*entity.Transaction, error)

	// Update applies a partial update to an owned transaction
	Update(ctx context.Context, userID, id uint64, patch entity.TransactionPatch) error

	// Delete removes an owned transaction
	Delete(ctx context.Context, userID, id uint64) error
}
