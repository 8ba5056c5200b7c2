package persistence

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// CategoryRepository defines methods to interact with category rows.
// Ownership filtering happens at the use case layer; GetByID returns the row
// regardless of owner so the caller can apply the ownership predicate.
type CategoryRepository interface {
	// ListByUser returns all categories owned by userID
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error)

	// GetByID retrieves a category by primary key
	//
	// Possible errors:
	// - ErrCategoryNotFound: If no category with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Category, error)

	// Create inserts a new category and assigns its ID
	Create(ctx context.Context, category *entity.Category) error

	// Update applies a partial update to the category with the given ID
	//
	// Possible errors:
	// - ErrCategoryNotFound: If no category with the given ID exists
	Update(ctx context.Context, id uint64, patch entity.CategoryPatch) error

	// Delete removes the category with the given ID
	//
	// Possible errors:
	// - ErrCategoryNotFound: If no category with the given ID exists
	Delete(ctx context.Context, id uint64) error
}
