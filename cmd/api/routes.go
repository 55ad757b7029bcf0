package main

import (
	"context"
	"net/http"
	"time"

	"leasehub-admin/internal/middleware"
	"leasehub-admin/pkg/cache"
	"leasehub-admin/pkg/database"
	"leasehub-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupHealthCheck configures the health and metrics endpoints
func (a *App) setupHealthCheck() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Printf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/login", a.AuthHandler.Login)
		api.POST("/webhooks/payments", a.WebhookHandler.HandlePaymentWebhook)

		// Protected admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			admin.GET("/properties", a.PropertyHandler.GetProperties)
			admin.GET("/properties/:id", a.PropertyHandler.GetPropertyByID)
			admin.POST("/properties", a.PropertyHandler.CreateProperty)
			admin.PUT("/properties", a.PropertyHandler.UpdateProperty)
			admin.DELETE("/properties/:id", a.PropertyHandler.DeleteProperty)

			admin.GET("/users", a.UserHandler.GetUsers)
			admin.GET("/users/:id", a.UserHandler.GetUserByID)
			admin.DELETE("/users/:id", a.UserHandler.DeleteUser)

			admin.GET("/subscriptions", a.SubscriptionHandler.GetSubscriptions)
			admin.DELETE("/subscriptions/:id", a.SubscriptionHandler.DeleteSubscription)

			admin.POST("/maintenance/expire-boosts", a.MaintenanceHandler.ExpireBoosts)
		}
	}
}
