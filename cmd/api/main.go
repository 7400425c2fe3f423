package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	catalogUseCase "github.com/Tatang94/atz/internal/domain/usecase/catalog"
	orderUseCase "github.com/Tatang94/atz/internal/domain/usecase/order"

	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/handler"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/api/routes"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/database"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/database/migration"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/digiflazz"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/logger"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/paydisini"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/repository"
	timeProvider "github.com/Tatang94/atz/internal/infrastructure/adapter/time"
	"github.com/Tatang94/atz/internal/infrastructure/config"
	"github.com/Tatang94/atz/internal/infrastructure/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := database.CreateConfigFromAppConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed the starter catalog
	if err := migration.SeedDefaultProducts(context.Background(), dbManager.DB()); err != nil {
		appLogger.Error("Failed to seed default products", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger, dbManager.GetErrorMapper())
	productRepo := repository.NewProductRepository(dbManager.DB(), appLogger, dbManager.GetErrorMapper())

	// Initialize gateway adapters
	paymentGateway, err := paydisini.NewClient(paydisini.Config{
		APIKey:  cfg.Payment.APIKey,
		BaseURL: cfg.Payment.BaseURL,
		Timeout: cfg.Payment.Timeout,
	}, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize payment gateway", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	fulfillmentProvider, err := digiflazz.NewClient(digiflazz.Config{
		Username: cfg.Fulfillment.Username,
		APIKey:   cfg.Fulfillment.APIKey,
		BaseURL:  cfg.Fulfillment.BaseURL,
		Timeout:  cfg.Fulfillment.Timeout,
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize fulfillment provider", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	orderService := orderUseCase.NewService(
		transactionRepo,
		productRepo,
		paymentGateway,
		fulfillmentProvider,
		tp,
		appLogger,
		cfg.Transaction.PaymentValidity,
	)
	catalogService := catalogUseCase.NewUseCase(productRepo, appLogger)

	// Start the expiry sweeper
	sweeper := worker.NewExpirySweeper(orderService, tp, appLogger, cfg.Transaction.SweepInterval)
	sweeper.Start()

	// Initialize API handlers
	transactionHandler := handler.NewTransactionHandler(orderService, appLogger)
	webhookHandler := handler.NewWebhookHandler(orderService, appLogger)
	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, transactionHandler, webhookHandler, catalogHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Stop the background sweeper before closing the database
	sweeper.Stop()

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
