package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"leasehub-admin/internal/handlers"
	"leasehub-admin/internal/middleware"
	"leasehub-admin/internal/repositories"
	"leasehub-admin/internal/services"
	"leasehub-admin/internal/validators"
	"leasehub-admin/pkg/cache"
	"leasehub-admin/pkg/config"
	"leasehub-admin/pkg/database"
	"leasehub-admin/pkg/logger"
	"leasehub-admin/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config              *config.Config
	DB                  database.Database
	Router              *gin.Engine
	AuthHandler         *handlers.AuthHandler
	PropertyHandler     *handlers.PropertyHandler
	UserHandler         *handlers.UserHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	WebhookHandler      *handlers.WebhookHandler
	MaintenanceHandler  *handlers.MaintenanceHandler
	RateLimiter         *middleware.RateLimiter
	Server              *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection and indexes
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	a.DB = database.NewMongoDatabase(database.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.DB.CreateIndexes(ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(a.Config.Server.RateLimitPerMinute, a.Config.Server.RateLimitBurst)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	propertyRepo := repositories.NewPropertyRepository(a.DB)
	userRepo := repositories.NewUserRepository(a.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(a.DB)

	// validators
	propertyValidator := validators.NewPropertyValidator()

	// services
	snapshotTTL := time.Duration(a.Config.Redis.SnapshotTTLSeconds) * time.Second
	cascade := services.NewCascadeManager(propertyRepo, subscriptionRepo)
	lifecycle := services.NewSubscriptionLifecycle(subscriptionRepo, propertyRepo)
	propertyService := services.NewPropertyService(propertyRepo, userRepo, propertyValidator, cascade)
	userService := services.NewUserService(userRepo, propertyRepo, cascade, snapshotTTL)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, propertyRepo, cascade, snapshotTTL)

	// handlers
	a.AuthHandler = handlers.NewAuthHandler(a.Config)
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.SubscriptionHandler = handlers.NewSubscriptionHandler(subscriptionService)
	a.WebhookHandler = handlers.NewWebhookHandler(lifecycle, a.Config.Webhook.Secret)
	a.MaintenanceHandler = handlers.NewMaintenanceHandler(lifecycle)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
