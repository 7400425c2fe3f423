package routes

import (
	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/handler"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	webhookHandler *handler.WebhookHandler,
	catalogHandler *handler.CatalogHandler,
) {
	api := router.Group("/api")
	{
		// POST /api/transactions
		api.POST("/transactions", transactionHandler.CreateTransaction)

		// GET /api/transactions/:refId
		api.GET("/transactions/:refId", transactionHandler.GetTransaction)

		// POST /api/payment-callback
		api.POST("/payment-callback", webhookHandler.HandlePaymentCallback)

		// GET /api/products
		api.GET("/products", catalogHandler.ListProducts)

		// GET /api/products/:category
		api.GET("/products/:category", catalogHandler.ListByCategory)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
