package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/budget-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/budget-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API. Register and signin are
// open; everything else under /api requires Basic auth.
func SetupRoutes(
	router *gin.Engine,
	authUseCase usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/signin", authHandler.SignIn)

		categories := api.Group("/categories")
		categories.Use(middleware.BasicAuth(authUseCase, logger))
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/:id", categoryHandler.Get)
			categories.PATCH("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		transactions := api.Group("/transactions")
		transactions.Use(middleware.BasicAuth(authUseCase, logger))
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
			transactions.GET("/:id", transactionHandler.Get)
			transactions.PATCH("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
