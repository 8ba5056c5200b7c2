package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingField        = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidCategoryType = 4003
	CodeDuplicateEmail      = 4004
	CodeEmptyUpdate         = 4005
	CodeConstraintViolation = 4006
	CodeInvalidRequest      = 4007
	CodeUnauthorized        = 4010
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingField is returned when a required request field is absent or empty
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidAmount is returned when the transaction amount is not a valid decimal number
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidCategoryType is returned when the category type is not income or expense
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrDuplicateEmail is returned when registering with an email that already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrEmptyUpdate is returned when a partial update carries no recognized fields
	ErrEmptyUpdate = errors.New("update contains no recognized fields")

	// ErrInvalidCredentials is returned when authentication fails for any reason.
	// Unknown email and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when a category is absent or owned by another user
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound is returned when a transaction is absent or owned by another user
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCategoryType):
		return CodeInvalidCategoryType
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrEmptyUpdate):
		return CodeEmptyUpdate
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeUnauthorized
	case IsNotFoundError(err):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// MissingFieldError reports the first required field that was absent or empty
type MissingFieldError struct {
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is checks if the target error is an ErrMissingField
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// LogFields returns a map of fields for structured logging
func (e *MissingFieldError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "missing_field",
		"field":      e.Field,
		"error_code": CodeMissingField,
	}
}

// NewMissingFieldError creates a new detailed missing field error
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// OwnershipError records a rejected access to a row owned by another user.
// It unwraps to the resource's not-found sentinel so the caller can never
// distinguish a foreign row from an absent one.
type OwnershipError struct {
	Resource   string
	ResourceID uint64
	CallerID   uint64
	Err        error
}

// Error implements the error interface
func (e *OwnershipError) Error() string {
	return fmt.Sprintf("%s %d is not owned by user %d", e.Resource, e.ResourceID, e.CallerID)
}

// Unwrap returns the underlying not-found error
func (e *OwnershipError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *OwnershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "ownership_violation",
		"resource":    e.Resource,
		"resource_id": e.ResourceID,
		"caller_id":   e.CallerID,
		"error_code":  CodeNotFound,
	}
}

// NewOwnershipError creates a new ownership violation error wrapping notFound
func NewOwnershipError(resource string, resourceID, callerID uint64, notFound error) error {
	return &OwnershipError{
		Resource:   resource,
		ResourceID: resourceID,
		CallerID:   callerID,
		Err:        notFound,
	}
}

// IsMissingFieldError checks if the error is a missing field error
func IsMissingFieldError(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsUnauthorizedError checks if the error is an authentication failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error belongs to the BadRequest taxonomy
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCategoryType) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrEmptyUpdate) ||
		errors.Is(err, ErrInvalidRequest)
}
