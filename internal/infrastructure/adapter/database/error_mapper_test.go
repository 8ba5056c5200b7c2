package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
)

func TestMapError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Nil passes through", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, "query"))
	})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_login_email"`), domainErr.ErrDuplicateEmail},
		{"foreign key violation", errors.New(`insert or update violates foreign key constraint "fk_categories_user"`), domainErr.ErrConstraintViolation},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), domainErr.ErrDatabaseConnection},
		{"unknown error", errors.New("something unexpected"), domainErr.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "query"), tt.want)
		})
	}

	t.Run("Timeout keeps the operation name", func(t *testing.T) {
		err := mapper.MapError(errors.New("context deadline exceeded"), "list transactions")

		assert.ErrorIs(t, err, domainErr.ErrDatabaseConnection)
		assert.Contains(t, err.Error(), "list transactions")
	})
}

func TestMapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		entityType EntityType
		want       error
	}{
		{EntityTypeUser, domainErr.ErrUserNotFound},
		{EntityTypeCategory, domainErr.ErrCategoryNotFound},
		{EntityTypeTransaction, domainErr.ErrTransactionNotFound},
		{EntityType("unknown"), domainErr.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.entityType), func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, tt.entityType), tt.want)
		})
	}

	t.Run("Non-gorm errors fall back to the generic mapping", func(t *testing.T) {
		err := mapper.MapEntityNotFoundError(errors.New("duplicate key value"), EntityTypeCategory)
		assert.ErrorIs(t, err, domainErr.ErrDuplicateEmail)
	})

	t.Run("Nil passes through", func(t *testing.T) {
		assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeUser))
	})
}
