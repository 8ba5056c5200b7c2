package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
	includeDetails     bool
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger, includeDetails bool) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
		includeDetails:     includeDetails,
	}
}

// List handles the GET /api/transactions endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	transactions, err := h.transactionUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// Create handles the POST /api/transactions endpoint
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, domainerr.ErrInvalidCredentials, h.includeDetails)
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	transaction, err := h.transactionUseCase.Create(c.Request.Context(), user.ID, req.Input())
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// Get handles the GET /api/transactions/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
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

	transaction, err := h.transactionUseCase.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Update handles the PATCH /api/transactions/:id endpoint
func (h *TransactionHandler) Update(c *gin.Context) {
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

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	if err := h.transactionUseCase.Update(c.Request.Context(), user.ID, id, req.Patch()); err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles the DELETE /api/transactions/:id endpoint
func (h *TransactionHandler) Delete(c *gin.Context) {
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

	if err := h.transactionUseCase.Delete(c.Request.Context(), user.ID, id); err != nil {
		writeError(c, err, h.includeDetails)
		return
	}

	c.Status(http.StatusAccepted)
}
