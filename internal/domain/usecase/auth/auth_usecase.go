package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/persistence"
)

// AuthUseCase handles registration and credential verification
type AuthUseCase struct {
	uow            persistence.UnitOfWork
	userRepo       persistence.UserRepository
	credentialRepo persistence.CredentialRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	bcryptCost     int
}

// NewAuthUseCase creates a new AuthUseCase. A bcryptCost of 0 falls back to
// the library default.
func NewAuthUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	credentialRepo persistence.CredentialRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	bcryptCost int,
) *AuthUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		uow:            uow,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		timeProvider:   timeProvider,
		logger:         logger,
		bcryptCost:     bcryptCost,
	}
}

// Register validates the registration fields, then creates the user and its
// credential inside one database transaction. Field checks run in request
// order so the response names the first missing field.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	user, err := entity.NewUser(name, email, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(password) == "" {
		return nil, errs.NewMissingFieldError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	credential, err := entity.NewCredential(email, string(hash))
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Warn("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := u.uow.GetCredentialRepository(txCtx).Create(txCtx, credential); err != nil {
		_ = u.uow.Rollback(txCtx)
		u.logger.Warn("Failed to create credential", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return user, nil
}

// SignIn verifies the email/password pair and resolves the user. The bcrypt
// comparison is constant-time, and unknown email and wrong password produce
// the same error.
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	credential, err := u.credentialRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		u.logger.Warn("Password mismatch", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Credential without a user means registration atomicity was
			// violated out of band; still answer 401, not 500 detail.
			u.logger.Error("Credential has no matching user", map[string]any{
				"email": email,
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}
