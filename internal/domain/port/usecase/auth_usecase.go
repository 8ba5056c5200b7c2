package usecase

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// AuthUseCase defines methods for registration and authentication
type AuthUseCase interface {
	// Register creates a User and its Credential atomically.
	// Validation reports the first missing field of {name, email, password}.
	//
	// Possible errors:
	// - MissingFieldError: If a required field is absent or empty
	// - ErrDuplicateEmail: If the email is already registered
	Register(ctx context.Context, name, email, password string) (*entity.User, error)

	// SignIn verifies the email/password pair against the stored hash and
	// resolves the User on success. Used both by POST /api/signin and by the
	// Basic-auth middleware on every protected request.
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the email is unknown or the password mismatches
	SignIn(ctx context.Context, email, password string) (*entity.User, error)
}
