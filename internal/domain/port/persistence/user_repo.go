package persistence

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// UserRepository defines methods to interact with user rows
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email, used after credential verification
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given email exists
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
