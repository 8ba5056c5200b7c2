package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	t.Helper()
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedTimeProvider(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(at).Maybe()
	return mockTime
}

func TestTransactionList(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
	mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

	transactions := []*entity.Transaction{
		{ID: 2, Venue: "Cinema", UserID: 10},
		{ID: 1, Venue: "Supermarket", UserID: 10},
	}
	mockTxRepo.EXPECT().ListByUser(mock.Anything, uint64(10)).Return(transactions, nil).Once()

	transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

	got, err := transactionUseCase.List(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, transactions, got)
}

func TestTransactionCreate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation without category", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		mockTxRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Venue == "Supermarket" && tx.Amount.StringFixed(2) == "42.50" && tx.UserID == 10
		})).Run(func(ctx context.Context, tx *entity.Transaction) {
			tx.ID = 1
		}).Return(nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		tx, err := transactionUseCase.Create(ctx, 10, usecase.CreateTransactionInput{
			Venue:  "Supermarket",
			Amount: "42.50",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.ID)
		assert.Equal(t, fixedTime, tx.Date)
	})

	t.Run("Owned category reference is accepted", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		categoryID := uint64(3)
		mockCategoryRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Category{ID: 3, UserID: 10}, nil).Once()
		mockTxRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		tx, err := transactionUseCase.Create(ctx, 10, usecase.CreateTransactionInput{
			Venue:      "Supermarket",
			Amount:     "42.50",
			CategoryID: &categoryID,
		})

		require.NoError(t, err)
		require.NotNil(t, tx.CategoryID)
		assert.Equal(t, uint64(3), *tx.CategoryID)
	})

	t.Run("Foreign category reference is rejected", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		categoryID := uint64(3)
		mockCategoryRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Category{ID: 3, UserID: 99}, nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		tx, err := transactionUseCase.Create(ctx, 10, usecase.CreateTransactionInput{
			Venue:      "Supermarket",
			Amount:     "42.50",
			CategoryID: &categoryID,
		})

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Validation failure never reaches the repository", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		tx, err := transactionUseCase.Create(ctx, 10, usecase.CreateTransactionInput{Venue: "", Amount: "10"})
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrMissingField)

		tx, err = transactionUseCase.Create(ctx, 10, usecase.CreateTransactionInput{Venue: "Supermarket", Amount: "ten"})
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionGet(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Owned transaction", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		tx := &entity.Transaction{ID: 1, Venue: "Supermarket", UserID: 10}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		got, err := transactionUseCase.Get(ctx, 10, 1)

		require.NoError(t, err)
		assert.Same(t, tx, got)
	})

	t.Run("Foreign transaction answers not found", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		tx := &entity.Transaction{ID: 1, UserID: 99}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		got, err := transactionUseCase.Get(ctx, 10, 1)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestTransactionUpdate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	venue := "Bakery"
	amount := "5.00"

	t.Run("Successful update with parsed amount", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		tx := &entity.Transaction{ID: 1, UserID: 10}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()
		mockTxRepo.EXPECT().Update(mock.Anything, uint64(1), mock.MatchedBy(func(update persistence.TransactionUpdate) bool {
			return update.Venue != nil && *update.Venue == "Bakery" &&
				update.Amount != nil && update.Amount.StringFixed(2) == "5.00"
		})).Return(nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		err := transactionUseCase.Update(ctx, 10, 1, entity.TransactionPatch{Venue: &venue, Amount: &amount})

		assert.NoError(t, err)
	})

	t.Run("Category change verifies the new reference", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		categoryID := uint64(3)
		tx := &entity.Transaction{ID: 1, UserID: 10}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()
		mockCategoryRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.Category{ID: 3, UserID: 99}, nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		err := transactionUseCase.Update(ctx, 10, 1, entity.TransactionPatch{CategoryID: &categoryID})

		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Empty patch is rejected before any lookup", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		err := transactionUseCase.Update(ctx, 10, 1, entity.TransactionPatch{})

		assert.ErrorIs(t, err, errs.ErrEmptyUpdate)
	})

	t.Run("Foreign transaction is not updated", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		tx := &entity.Transaction{ID: 1, UserID: 99}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		err := transactionUseCase.Update(ctx, 10, 1, entity.TransactionPatch{Venue: &venue})

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestTransactionDelete(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful delete", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		tx := &entity.Transaction{ID: 1, UserID: 10}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()
		mockTxRepo.EXPECT().Delete(mock.Anything, uint64(1)).Return(nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		assert.NoError(t, transactionUseCase.Delete(ctx, 10, 1))
	})

	t.Run("Foreign transaction is not deleted", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		tx := &entity.Transaction{ID: 1, UserID: 99}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		err := transactionUseCase.Delete(ctx, 10, 1)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Repository failure passes through", func(t *testing.T) {
		mockTxRepo := persistencemocks.NewMockTransactionRepository(t)
		mockCategoryRepo := persistencemocks.NewMockCategoryRepository(t)

		dbErr := errors.New("delete failed")
		tx := &entity.Transaction{ID: 1, UserID: 10}
		mockTxRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(tx, nil).Once()
		mockTxRepo.EXPECT().Delete(mock.Anything, uint64(1)).Return(dbErr).Once()

		transactionUseCase := NewTransactionUseCase(mockTxRepo, mockCategoryRepo, fixedTimeProvider(t, fixedTime), quietLogger(t))

		err := transactionUseCase.Delete(ctx, 10, 1)

		assert.Equal(t, dbErr, err)
	})
}
