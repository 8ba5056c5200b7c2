package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
)

// User represents a registered account. It is immutable after registration
// within this service's scope.
type User struct {
	ID     uint64    // Unique identifier for the user
	Name   string    // Display name supplied at registration
	Email  string    // Unique email address, shared with the credential row
	Joined time.Time // When the user registered
}

// NewUser creates a new user, validating the required registration fields.
// The first missing field is reported, matching the API's 400 contract.
func NewUser(name, email string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewMissingFieldError("name")
	}
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewMissingFieldError("email")
	}

	return &User{
		Name:   name,
		Email:  email,
		Joined: timeProvider.Now(),
	}, nil
}

// OwnerID satisfies the ownership predicate; a user owns itself.
func (u *User) OwnerID() uint64 {
	return u.ID
}
