package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and sign-in HTTP requests
type AuthHandler struct {
	authUseCase    usecase.AuthUseCase
	logger         coreport.Logger
	includeDetails bool
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger, includeDetails bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:    authUseCase,
		logger:         logger,
		includeDetails: includeDetails,
	}
}

// Register handles the POST /api/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// SignIn handles the POST /api/signin endpoint
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	user, err := h.authUseCase.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
