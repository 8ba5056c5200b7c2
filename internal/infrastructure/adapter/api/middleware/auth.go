package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/dto"
)

// currentUserKey is the gin context key the authenticated user is stored under
const currentUserKey = "currentUser"

// BasicAuth verifies the Basic Authorization header on every request and
// stores the resolved user in the gin context. Decoding failures and bad
// credentials both answer 401 with the same body.
func BasicAuth(authUseCase usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, err := auth.DecodeBasicCredentials(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := authUseCase.SignIn(c.Request.Context(), email, password)
		if err != nil {
			if !domainerr.IsUnauthorizedError(err) {
				logger.Error("Authentication lookup failed", map[string]any{
					"path":  c.Request.URL.Path,
					"error": err.Error(),
				})
			}
			unauthorized(c)
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser stores the authenticated user in the gin context
func SetCurrentUser(c *gin.Context, user *entity.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the authenticated user stored by BasicAuth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// unauthorized aborts the request with the standard 401 body
func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="budget-tracker"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.CodeUnauthorized,
		Message: "Invalid or missing credentials",
	})
}
