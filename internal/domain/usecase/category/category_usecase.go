package category

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/usecase/ownership"
)

// CategoryUseCase handles owner-scoped category operations
type CategoryUseCase struct {
	categoryRepo persistence.CategoryRepository
	logger       coreport.Logger
}

// NewCategoryUseCase creates a new CategoryUseCase
func NewCategoryUseCase(categoryRepo persistence.CategoryRepository, logger coreport.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns all categories owned by userID
func (u *CategoryUseCase) List(ctx context.Context, userID uint64) ([]*entity.Category, error) {
	return u.categoryRepo.ListByUser(ctx, userID)
}

// Create inserts a category owned by userID and returns the created row
func (u *CategoryUseCase) Create(ctx context.Context, userID uint64, name, categoryType string) (*entity.Category, error) {
	category, err := entity.NewCategory(userID, name, categoryType)
	if err != nil {
		return nil, err
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	u.logger.Info("Category created", map[string]any{
		"category_id": category.ID,
		"user_id":     userID,
		"type":        string(category.Type),
	})

	return category, nil
}

// Get returns the category with the given ID when owned by userID
func (u *CategoryUseCase) Get(ctx context.Context, userID, id uint64) (*entity.Category, error) {
	return u.owned(ctx, userID, id)
}

// Update applies a partial update to an owned category
func (u *CategoryUseCase) Update(ctx context.Context, userID, id uint64, patch entity.CategoryPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	if _, err := u.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := u.categoryRepo.Update(ctx, id, patch); err != nil {
		return err
	}

	u.logger.Info("Category updated", map[string]any{
		"category_id": id,
		"user_id":     userID,
	})
	return nil
}

// Delete removes an owned category. Transactions referencing it keep a NULL
// category_id through the schema's SET NULL constraint.
func (u *CategoryUseCase) Delete(ctx context.Context, userID, id uint64) error {
	if _, err := u.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Category deleted", map[string]any{
		"category_id": id,
		"user_id":     userID,
	})
	return nil
}

// owned applies the ownership predicate for an id-addressed category
func (u *CategoryUseCase) owned(ctx context.Context, userID, id uint64) (*entity.Category, error) {
	return ownership.Require(func() (*entity.Category, error) {
		return u.categoryRepo.GetByID(ctx, id)
	}, userID, errs.ErrCategoryNotFound)
}
