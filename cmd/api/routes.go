package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"rentsight-backend/internal/middleware"
	"rentsight-backend/pkg/cache"
	"rentsight-backend/pkg/database"
	"rentsight-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupOperationalRoutes exposes metrics and profiling endpoints
func (a *App) setupOperationalRoutes() {
	// Expose pprof profiling endpoints (disable in production)
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.DB.PingContext(ctx); err != nil {
			logger.GlobalLogger.Printf("MySQL ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MySQL unavailable"})
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
		auth := api.Group("/auth")
		{
			auth.POST("/register", a.UserHandler.Register)
			auth.POST("/login", a.UserHandler.Login)
			auth.GET("/check-email", a.UserHandler.CheckEmail)
			auth.POST("/verify-email", a.VerificationHandler.VerifyEmail)
			auth.POST("/resend-verification", a.VerificationHandler.ResendEmail)
			auth.POST("/phone-verification/send", a.VerificationHandler.SendPhoneCode)
			auth.POST("/phone-verification/validate", a.VerificationHandler.ValidatePhoneCode)
		}

		api.GET("/properties", a.PropertyHandler.SearchProperties)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			protected.GET("/auth/me", a.UserHandler.Me)
		}
	}
}
