package main

import (
	"fmt"
	"net/http"
	"os"

	"marketdeck/internal/config"
	"marketdeck/internal/database"
	"marketdeck/internal/handlers"
	"marketdeck/internal/logger"
	"marketdeck/internal/middleware"
	"marketdeck/internal/repository"
	"marketdeck/internal/services"
	"marketdeck/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "marketdeck/internal/docs" // Import swagger docs
)

// @title           Marketdeck API
// @version         1.0
// @description     Marketdeck serves a market dashboard: a filterable, sortable asset table with category counts, free-text search, market index summaries, and portfolio CSV import.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Select the asset store
	repo, err := newAssetRepository(appConfig)
	if err != nil {
		return err
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	assetService := services.NewAssetService(repo)
	marketService := services.NewMarketService()
	importService := services.NewImportService()

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	searchHandler := handlers.NewSearchHandler(assetService)
	marketHandler := handlers.NewMarketHandler(marketService)
	importHandler := handlers.NewImportHandler(importService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Asset routes
	assets := v1.Group("/assets")
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/categories", assetHandler.GetCategoryCounts)
	assets.GET("/:id", assetHandler.GetAsset)

	// Search route
	v1.GET("/search", searchHandler.Search)

	// Market summary route
	v1.GET("/markets/summary", marketHandler.Summary)

	// Import routes
	imports := v1.Group("/import")
	imports.POST("", importHandler.ImportPortfolio)
	imports.GET("/template", importHandler.DownloadTemplate)

	log.Infof("Starting Marketdeck backend server on port %s (store: %s)", appConfig.Port, appConfig.AssetStore)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// newAssetRepository builds the configured asset store: the in-memory
// mock with simulated latency by default, or the migrated Postgres store
// when ASSET_STORE=postgres.
func newAssetRepository(appConfig *config.Config) (repository.AssetRepository, error) {
	if appConfig.AssetStore != config.StorePostgres {
		return repository.NewMockRepository(repository.MockConfig{
			ListLatency:   appConfig.MockListLatency,
			LookupLatency: appConfig.MockLookupLatency,
		}), nil
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return repository.NewGormRepository(dbManager.DB()), nil
}
