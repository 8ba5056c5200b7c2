package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/dto"
)

// writeError maps a domain error to its HTTP status and standard body.
// Internal detail only leaks when includeDetails is set, which main wires
// to every environment except production.
func writeError(c *gin.Context, err error, includeDetails bool) {
	switch {
	case domainerr.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeUnauthorized,
			Message: err.Error(),
		})
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.CodeNotFound,
			Message: err.Error(),
		})
	default:
		message := "Internal server error"
		if includeDetails {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
	}
}

// invalidBody answers a request whose JSON body failed to bind
func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Message: "Invalid request body",
	})
}

// invalidID answers a request whose path id is not a positive integer
func invalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Message: "Invalid id format",
	})
}
