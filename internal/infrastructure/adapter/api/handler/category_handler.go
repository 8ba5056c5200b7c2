package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/middleware"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          coreport.Logger
	includeDetails  bool
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger coreport.Logger, includeDetails bool) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
		includeDetails:  includeDetails,
	}
}

// List handles the GET /api/categories endpoint
func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	categories, err := h.categoryUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// Create handles the POST /api/categories endpoint
func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	category, err := h.categoryUseCase.Create(c.Request.Context(), user.ID, req.Name, req.Type)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Get handles the GET /api/categories/:id endpoint
func (h *CategoryHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	id, err := parseID(c)
	if err != nil {
		invalidID(c)
		return
	}

	category, err := h.categoryUseCase.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Update handles the PATCH /api/categories/:id endpoint
func (h *CategoryHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	id, err := parseID(c)
	if err != nil {
		invalidID(c)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	if err := h.categoryUseCase.Update(c.Request.Context(), user.ID, id, req.Patch()); err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles the DELETE /api/categories/:id endpoint
func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	id, err := parseID(c)
	if err != nil {
		invalidID(c)
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), user.ID, id); err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.Status(http.StatusAccepted)
}

// parseID extracts the numeric :id path parameter
func parseID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
