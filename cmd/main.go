package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"listing-mapper-service/internal/clients"
	"listing-mapper-service/internal/config"
	"listing-mapper-service/internal/database"
	"listing-mapper-service/internal/handlers"
	"listing-mapper-service/internal/middleware"
	"listing-mapper-service/internal/models"
	"listing-mapper-service/internal/repository"
	"listing-mapper-service/internal/services"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.PoolCode{},
		&models.ShopPriceConfig{},
	); err != nil {
		logger.Warnf("Auto-migration failed: %v", err)
	}
	logger.Info("Database models migrated")

	// Initialize Redis client (optional - graceful degradation if unavailable)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warnf("Failed to parse Redis URL: %v", err)
		} else {
			redisClient = redis.NewClient(opt)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logger.Warnf("Failed to connect to Redis: %v", err)
				redisClient = nil
			} else {
				logger.Info("Connected to Redis for caching")
			}
			cancel()
		}
	} else {
		logger.Info("REDIS_URL not configured, caching disabled")
	}

	// Initialize repositories
	poolRepo := repository.NewUPCPoolRepository(db)
	priceConfigRepo := repository.NewPriceConfigRepository(db, redisClient)

	// Initialize services
	specSource := clients.NewSpecSourceClient(cfg.MarketSpecPath, cfg.MarketSpecURL, cfg.DefaultRateLimit)
	upcService := services.NewUPCService(poolRepo, logger)
	priceService := services.NewPriceService(priceConfigRepo, logger)
	intlService := services.NewIntlService(specSource, logger)
	resolverService := services.NewResolverService(upcService, priceService, logger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	resolveHandler := handlers.NewResolveHandler(resolverService, intlService)
	poolHandler := handlers.NewPoolHandler(upcService, poolRepo)
	priceConfigHandler := handlers.NewPriceConfigHandler(priceConfigRepo)

	// Setup router
	router := setupRouter(cfg, healthHandler, resolveHandler, poolHandler, priceConfigHandler)

	// Start server
	logger.Infof("Listing Mapper Service starting on port %s (env: %s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures the HTTP router
func setupRouter(
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	resolveHandler *handlers.ResolveHandler,
	poolHandler *handlers.PoolHandler,
	priceConfigHandler *handlers.PriceConfigHandler,
) *gin.Engine {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Security headers middleware
	router.Use(middleware.SecurityHeaders())

	// CORS middleware
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:3001",
		}
	}
	router.Use(middleware.CORS(origins))

	// Shop context middleware
	router.Use(middleware.ShopMiddleware())

	// Health check
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		// Attribute resolution
		listings := v1.Group("/listings")
		{
			listings.POST("/resolve", resolveHandler.Resolve)
		}

		// Product identifier pool
		upc := v1.Group("/upc")
		{
			upc.POST("/claim", poolHandler.Claim)
			upc.POST("/release", poolHandler.Release)
			upc.GET("/stats", poolHandler.Stats)
			upc.POST("/import", poolHandler.Import)
		}

		// Shop price configuration
		shops := v1.Group("/shops")
		{
			shops.GET("/:shopId/price-config", priceConfigHandler.Get)
			shops.PUT("/:shopId/price-config", priceConfigHandler.Put)
		}
	}

	return router
}
