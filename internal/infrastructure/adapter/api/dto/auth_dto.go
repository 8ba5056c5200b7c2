package dto

import (
	"time"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
)

// RegisterRequest represents the API request for user registration.
// Required-field validation happens in the auth use case so the response
// can name the first missing field.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest represents the API request for signing in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents the API response for a user
type UserResponse struct {
	ID     uint64    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Joined time.Time `json:"joined"`
}

// NewUserResponse converts a user entity to its API shape
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Joined: user.Joined,
	}
}
