package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	t.Helper()
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCredentialRepo := persistencemocks.NewMockCredentialRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetCredentialRepository(mock.Anything).Return(mockCredentialRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Name == "Jane Doe" && user.Email == "jane@example.com"
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).Return(nil).Once()

		mockCredentialRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(credential *entity.Credential) bool {
			if credential.Email != "jane@example.com" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte("secret")) == nil
		})).Return(nil).Once()

		authUseCase := NewAuthUseCase(mockUow, nil, nil, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.Register(ctx, "Jane Doe", "jane@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, fixedTime, user.Joined)
	})

	t.Run("Missing fields are reported in request order", func(t *testing.T) {
		testCases := []struct {
			name     string
			userName string
			email    string
			password string
			field    string
		}{
			{"All missing reports name", "", "", "", "name"},
			{"Missing email", "Jane Doe", "", "secret", "email"},
			{"Missing password", "Jane Doe", "jane@example.com", "", "password"},
			{"Blank password", "Jane Doe", "jane@example.com", "   ", "password"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockUow := persistencemocks.NewMockUnitOfWork(t)
				mockTime := coremocks.NewMockTimeProvider(t)
				mockTime.EXPECT().Now().Return(fixedTime).Maybe()
				mockLogger := quietLogger(t)

				authUseCase := NewAuthUseCase(mockUow, nil, nil, mockTime, mockLogger, bcrypt.MinCost)

				user, err := authUseCase.Register(ctx, tc.userName, tc.email, tc.password)

				assert.Nil(t, user)

				var mfe *errs.MissingFieldError
				require.ErrorAs(t, err, &mfe)
				assert.Equal(t, tc.field, mfe.Field)
			})
		}
	})

	t.Run("Duplicate email rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateEmail).Once()

		authUseCase := NewAuthUseCase(mockUow, nil, nil, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.Register(ctx, "Jane Doe", "jane@example.com", "secret")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("Credential failure rolls back the user insert", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCredentialRepo := persistencemocks.NewMockCredentialRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		dbErr := errors.New("insert failed")

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUserRepo).Once()
		mockUow.EXPECT().GetCredentialRepository(mock.Anything).Return(mockCredentialRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockCredentialRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

		authUseCase := NewAuthUseCase(mockUow, nil, nil, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.Register(ctx, "Jane Doe", "jane@example.com", "secret")

		assert.Nil(t, user)
		assert.Equal(t, dbErr, err)
	})

	t.Run("Begin failure", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		dbErr := errors.New("no connection")
		mockUow.EXPECT().Begin(mock.Anything).Return(nil, dbErr).Once()

		authUseCase := NewAuthUseCase(mockUow, nil, nil, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.Register(ctx, "Jane Doe", "jane@example.com", "secret")

		assert.Nil(t, user)
		assert.Equal(t, dbErr, err)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful sign in", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCredentialRepo := persistencemocks.NewMockCredentialRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		credential := &entity.Credential{
			ID:           1,
			Email:        "jane@example.com",
			PasswordHash: hashFor(t, "secret"),
		}
		user := &entity.User{ID: 1, Name: "Jane Doe", Email: "jane@example.com"}

		mockCredentialRepo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(credential, nil).Once()
		mockUserRepo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(user, nil).Once()

		authUseCase := NewAuthUseCase(nil, mockUserRepo, mockCredentialRepo, mockTime, mockLogger, bcrypt.MinCost)

		got, err := authUseCase.SignIn(ctx, "jane@example.com", "secret")

		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("Empty email or password", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		authUseCase := NewAuthUseCase(nil, nil, nil, mockTime, mockLogger, bcrypt.MinCost)

		_, err := authUseCase.SignIn(ctx, "", "secret")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

		_, err = authUseCase.SignIn(ctx, "jane@example.com", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockCredentialRepo := persistencemocks.NewMockCredentialRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		mockCredentialRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, errs.ErrInvalidCredentials).Once()

		authUseCase := NewAuthUseCase(nil, nil, mockCredentialRepo, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.SignIn(ctx, "nobody@example.com", "secret")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockCredentialRepo := persistencemocks.NewMockCredentialRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		credential := &entity.Credential{
			Email:        "jane@example.com",
			PasswordHash: hashFor(t, "secret"),
		}
		mockCredentialRepo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(credential, nil).Once()

		authUseCase := NewAuthUseCase(nil, nil, mockCredentialRepo, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.SignIn(ctx, "jane@example.com", "wrong")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Credential without a user still answers unauthorized", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockCredentialRepo := persistencemocks.NewMockCredentialRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := quietLogger(t)

		credential := &entity.Credential{
			Email:        "jane@example.com",
			PasswordHash: hashFor(t, "secret"),
		}
		mockCredentialRepo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(credential, nil).Once()
		mockUserRepo.EXPECT().GetByEmail(mock.Anything, "jane@example.com").Return(nil, errs.ErrUserNotFound).Once()

		authUseCase := NewAuthUseCase(nil, mockUserRepo, mockCredentialRepo, mockTime, mockLogger, bcrypt.MinCost)

		user, err := authUseCase.SignIn(ctx, "jane@example.com", "secret")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
