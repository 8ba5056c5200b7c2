package usecase

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// CategoryUseCase defines owner-scoped category operations. Every method
// takes the authenticated caller's user ID; id-addressed methods answer
// ErrCategoryNotFound for both absent and foreign rows.
type CategoryUseCase interface {
	// List returns all categories owned by userID
	List(ctx context.Context, userID uint64) ([]*entity.Category, error)

	// Create inserts a category owned by userID and returns the created row
	Create(ctx context.Context, userID uint64, name, categoryType string) (*entity.Category, error)

	// Get returns the category with the given ID when owned by userID
	Get(ctx context.Context, userID, id uint64) (*entity.Category, error)

	// Update applies a partial update to an owned category
	Update(ctx context.Context, userID, id uint64, patch entity.CategoryPatch) error

	// Delete removes an owned category
	Delete(ctx context.Context, userID, id uint64) error
}
