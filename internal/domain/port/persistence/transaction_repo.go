package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// TransactionUpdate is the column-level shape of a transaction patch after
// validation: the amount is already parsed and rounded.
type TransactionUpdate struct {
	Venue      *string
	Amount     *decimal.Decimal
	Comments   *string
	CategoryID *uint64
}

// TransactionRepository defines methods to interact with transaction rows.
// Like CategoryRepository, ownership filtering is the use case's concern.
type TransactionRepository interface {
	// ListByUser returns all transactions owned by userID, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// GetByID retrieves a transaction by primary key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Create inserts a new transaction and assigns its ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update applies a partial update to the transaction with the given ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with the given ID exists
	Update(ctx context.Context, id uint64, update TransactionUpdate) error

	// Delete removes the transaction with the given ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with the given ID exists
	Delete(ctx context.Context, id uint64) error
}
