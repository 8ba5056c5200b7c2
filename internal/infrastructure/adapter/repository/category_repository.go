package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CategoryRepository implements persistence.CategoryRepository using GORM
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToCategoryEntity converts a category model to an entity
func modelToCategoryEntity(categoryModel *model.Category) *entity.Category {
	return &entity.Category{
		ID:     categoryModel.ID,
		Name:   categoryModel.Name,
		Type:   entity.CategoryType(categoryModel.Type),
		UserID: categoryModel.UserID,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CategoryRepository) handleDatabaseError(operation string, err error, categoryID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCategoryNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"category_id": categoryID,
		"error":       err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// ListByUser returns all categories owned by userID
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error) {
	var categoryModels []model.Category
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&categoryModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing categories", result.Error, 0)
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, modelToCategoryEntity(&categoryModels[i]))
	}
	return categories, nil
}

// GetByID retrieves a category by primary key, regardless of owner
func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).First(&categoryModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting category", result.Error, id)
	}

	return modelToCategoryEntity(&categoryModel), nil
}

// Create inserts a new category and writes the generated ID back to the entity
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.Category{
		Name:   category.Name,
		Type:   string(category.Type),
		UserID: category.UserID,
	}

	result := r.db.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating category", result.Error, 0)
	}

	category.ID = categoryModel.ID
	return nil
}

// Update applies a partial update to the category with the given ID
func (r *CategoryRepository) Update(ctx context.Context, id uint64, patch entity.CategoryPatch) error {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}

	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return r.handleDatabaseError("updating category", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category with the given ID. Referencing transactions
// keep a NULL category_id through the FK's SET NULL.
func (r *CategoryRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Category{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting category", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}
