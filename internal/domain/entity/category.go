package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
)

// CategoryType represents the direction of money a category labels
type CategoryType string

// Category types
const (
	TypeIncome  CategoryType = "income"
	TypeExpense CategoryType = "expense"
)

// Category is a user-defined label applied to transactions
type Category struct {
	ID     uint64       // Unique identifier for the category
	Name   string       // Display name chosen by the owner
	Type   CategoryType // income or expense
	UserID uint64       // ID of the owning user
}

// NewCategory creates a new category owned by userID. An empty type defaults
// to expense; any other unknown value is rejected.
func NewCategory(userID uint64, name, categoryType string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewMissingFieldError("name")
	}

	ctype := TypeExpense
	if categoryType != "" {
		if !isValidCategoryType(categoryType) {
			return nil, errs.ErrInvalidCategoryType
		}
		ctype = CategoryType(categoryType)
	}

	return &Category{
		Name:   name,
		Type:   ctype,
		UserID: userID,
	}, nil
}

// OwnerID returns the ID of the owning user
func (c *Category) OwnerID() uint64 {
	return c.UserID
}

// CategoryPatch carries the mutable fields of a partial category update.
// Nil pointers leave the corresponding column untouched.
type CategoryPatch struct {
	Name *string
	Type *string
}

// IsEmpty reports whether the patch carries no recognized fields
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil
}

// Validate checks that every supplied field is usable
func (p CategoryPatch) Validate() error {
	if p.IsEmpty() {
		return errs.ErrEmptyUpdate
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errs.NewMissingFieldError("name")
	}
	if p.Type != nil && !isValidCategoryType(*p.Type) {
		return errs.ErrInvalidCategoryType
	}
	return nil
}

// isValidCategoryType validates if the category type is allowed
func isValidCategoryType(categoryType string) bool {
	return categoryType == string(TypeIncome) || categoryType == string(TypeExpense)
}
