package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(5, "Supermarket", "42.50", "weekly shop", nil, nil, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Supermarket", tx.Venue)
		assert.Equal(t, "42.50", tx.Amount.StringFixed(2))
		assert.Equal(t, "weekly shop", tx.Comments)
		assert.Nil(t, tx.CategoryID)
		assert.Equal(t, uint64(5), tx.UserID)
		assert.Equal(t, fixedTime, tx.Date)
		assert.Equal(t, fixedTime, tx.CreatedAt)
	})

	t.Run("Explicit date is kept", func(t *testing.T) {
		date := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
		tx, err := NewTransaction(5, "Cinema", "12.00", "", nil, &date, mockTime)

		require.NoError(t, err)
		assert.Equal(t, date, tx.Date)
		assert.Equal(t, fixedTime, tx.CreatedAt)
	})

	t.Run("Amount is rounded to two decimal places", func(t *testing.T) {
		tx, err := NewTransaction(5, "Fuel", "19.999", "", nil, nil, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "20.00", tx.Amount.StringFixed(2))
	})

	t.Run("Negative amount is allowed", func(t *testing.T) {
		tx, err := NewTransaction(5, "Refund", "-10.00", "", nil, nil, mockTime)

		require.NoError(t, err)
		assert.True(t, tx.Amount.IsNegative())
	})

	t.Run("Category reference is kept", func(t *testing.T) {
		categoryID := uint64(3)
		tx, err := NewTransaction(5, "Supermarket", "42.50", "", &categoryID, nil, mockTime)

		require.NoError(t, err)
		require.NotNil(t, tx.CategoryID)
		assert.Equal(t, uint64(3), *tx.CategoryID)
	})

	t.Run("Missing venue", func(t *testing.T) {
		tx, err := NewTransaction(5, " ", "42.50", "", nil, nil, mockTime)

		assert.Nil(t, tx)

		var mfe *errs.MissingFieldError
		require.ErrorAs(t, err, &mfe)
		assert.Equal(t, "venue", mfe.Field)
	})

	t.Run("Missing amount", func(t *testing.T) {
		tx, err := NewTransaction(5, "Supermarket", "", "", nil, nil, mockTime)

		assert.Nil(t, tx)

		var mfe *errs.MissingFieldError
		require.ErrorAs(t, err, &mfe)
		assert.Equal(t, "amount", mfe.Field)
	})

	t.Run("Invalid amount format", func(t *testing.T) {
		testCases := []string{"abc", "12,50", "$10", "10.5.2"}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				tx, err := NewTransaction(5, "Supermarket", tc, "", nil, nil, mockTime)

				assert.Nil(t, tx)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestTransactionOwnerID(t *testing.T) {
	tx := &Transaction{ID: 1, UserID: 11}
	assert.Equal(t, uint64(11), tx.OwnerID())
}

func TestTransactionPatchValidate(t *testing.T) {
	venue := "Bakery"
	blankVenue := "  "
	amount := "3.456"
	badAmount := "three"
	comments := ""

	t.Run("Empty patch", func(t *testing.T) {
		_, err := TransactionPatch{}.Validate()
		assert.ErrorIs(t, err, errs.ErrEmptyUpdate)
	})

	t.Run("Venue only", func(t *testing.T) {
		parsed, err := TransactionPatch{Venue: &venue}.Validate()

		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("Amount is parsed and rounded", func(t *testing.T) {
		parsed, err := TransactionPatch{Amount: &amount}.Validate()

		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.True(t, parsed.Equal(decimal.RequireFromString("3.46")))
	})

	t.Run("Blank venue is rejected", func(t *testing.T) {
		_, err := TransactionPatch{Venue: &blankVenue}.Validate()
		assert.ErrorIs(t, err, errs.ErrMissingField)
	})

	t.Run("Invalid amount is rejected", func(t *testing.T) {
		_, err := TransactionPatch{Amount: &badAmount}.Validate()
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Clearing comments alone is a valid patch", func(t *testing.T) {
		parsed, err := TransactionPatch{Comments: &comments}.Validate()

		require.NoError(t, err)
		assert.Nil(t, parsed)
	})
}
