package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
)

// Credential holds the stored password hash for an email. It is created
// alongside the User at registration and only ever read for authentication.
type Credential struct {
	ID           uint64 // Unique identifier for the credential row
	Email        string // Unique email, same value as the users row
	PasswordHash string // bcrypt hash of the password
}

// NewCredential creates a credential from an email and an already-hashed
// password. Hashing happens in the auth use case so the entity stays free
// of crypto dependencies.
func NewCredential(email, passwordHash string) (*Credential, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewMissingFieldError("email")
	}
	if passwordHash == "" {
		return nil, errs.NewMissingFieldError("password")
	}

	return &Credential{
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}
