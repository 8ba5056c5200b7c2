package ownership

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	t.Run("Owned resource is returned", func(t *testing.T) {
		category := &entity.Category{ID: 1, UserID: 10}

		got, err := Require(func() (*entity.Category, error) {
			return category, nil
		}, 10, errs.ErrCategoryNotFound)

		require.NoError(t, err)
		assert.Same(t, category, got)
	})

	t.Run("Foreign resource answers the not-found sentinel", func(t *testing.T) {
		category := &entity.Category{ID: 1, UserID: 10}

		got, err := Require(func() (*entity.Category, error) {
			return category, nil
		}, 99, errs.ErrCategoryNotFound)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Fetch error passes through unchanged", func(t *testing.T) {
		got, err := Require(func() (*entity.Category, error) {
			return nil, errs.ErrCategoryNotFound
		}, 10, errs.ErrCategoryNotFound)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Infrastructure error is not masked as not-found", func(t *testing.T) {
		dbErr := errors.New("connection reset")

		got, err := Require(func() (*entity.Transaction, error) {
			return nil, dbErr
		}, 10, errs.ErrTransactionNotFound)

		assert.Nil(t, got)
		assert.Equal(t, dbErr, err)
	})

	t.Run("Absent and foreign rows are indistinguishable", func(t *testing.T) {
		foreign := &entity.Transaction{ID: 2, UserID: 7}

		_, foreignErr := Require(func() (*entity.Transaction, error) {
			return foreign, nil
		}, 10, errs.ErrTransactionNotFound)

		_, absentErr := Require(func() (*entity.Transaction, error) {
			return nil, errs.ErrTransactionNotFound
		}, 10, errs.ErrTransactionNotFound)

		assert.Equal(t, foreignErr, absentErr)
	})
}
