package persistence

import (
	"context"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// CredentialRepository defines methods to interact with the login table
type CredentialRepository interface {
	// GetByEmail retrieves the stored credential for an email
	//
	// Possible errors:
	// - ErrInvalidCredentials: If no credential exists for the email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create inserts a new credential row and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If a credential already exists for the email
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, credential *entity.Credential) error
}
