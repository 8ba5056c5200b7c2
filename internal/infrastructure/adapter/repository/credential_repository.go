package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CredentialRepository implements persistence.CredentialRepository using GORM
type CredentialRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCredentialRepository creates a new CredentialRepository instance
func NewCredentialRepository(db *gorm.DB, logger coreport.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByEmail retrieves the stored credential for an email. An absent row maps
// to ErrInvalidCredentials so the auth layer never distinguishes unknown
// emails from bad passwords.
func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credModel model.Credential
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&credModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("No credential for email", map[string]any{
				"email": email,
			})
			return nil, errs.ErrInvalidCredentials
		}
		r.logger.Error("Database error when getting credential", map[string]any{
			"email": email,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Credential{
		ID:           credModel.ID,
		Email:        credModel.Email,
		PasswordHash: credModel.Password,
	}, nil
}

// Create inserts a new credential row
func (r *CredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credModel := model.Credential{
		Email:    credential.Email,
		Password: credential.PasswordHash,
	}

	result := r.db.WithContext(ctx).Create(&credModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Credential already exists", map[string]any{
				"email": credential.Email,
			})
			return errs.ErrDuplicateEmail
		}
		r.logger.Error("Database error when creating credential", map[string]any{
			"email": credential.Email,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	credential.ID = credModel.ID
	return nil
}
