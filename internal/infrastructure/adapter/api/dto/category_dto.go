package dto

import (
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// CreateCategoryRequest represents the API request for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateCategoryRequest represents a partial category update.
// Absent fields stay nil and leave the column untouched.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// Patch converts the request to the domain patch shape
func (r UpdateCategoryRequest) Patch() entity.CategoryPatch {
	return entity.CategoryPatch{
		Name: r.Name,
		Type: r.Type,
	}
}

// CategoryResponse represents the API response for a category
type CategoryResponse struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	UserID uint64 `json:"user_id"`
}

// NewCategoryResponse converts a category entity to its API shape
func NewCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Type:   string(category.Type),
		UserID: category.UserID,
	}
}

// NewCategoryListResponse converts a slice of category entities
func NewCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, NewCategoryResponse(category))
	}
	return out
}
