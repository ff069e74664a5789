package main

import (
	"context"
	"net/http"
	"os"

	"rentsight-backend/internal/handlers"
	"rentsight-backend/internal/middleware"
	"rentsight-backend/internal/repositories"
	"rentsight-backend/internal/services"
	"rentsight-backend/internal/validators"
	"rentsight-backend/pkg/cache"
	"rentsight-backend/pkg/config"
	"rentsight-backend/pkg/database"
	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/mailer"
	"rentsight-backend/pkg/metrics"
	"rentsight-backend/pkg/sms"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config              *config.Config
	Router              *gin.Engine
	PropertyHandler     *handlers.PropertyHandler
	UserHandler         *handlers.UserHandler
	VerificationHandler *handlers.VerificationHandler
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

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
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
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	cacheOps := cache.NewRedisCache(cache.RedisClient)

	// repositories
	propertyRepo := repositories.NewPropertyRepository(database.DB)
	searchCache := repositories.NewSearchCache(cacheOps)
	userRepo := repositories.NewUserRepository(database.DB)

	// outbound gateways
	textSender, err := sms.NewSNSSender(context.Background(), a.Config.SMS.Region)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize SMS sender: %v", err)
		os.Exit(1)
	}
	m := mailer.NewMailer(a.Config)

	// validators
	userValidator := validators.NewUserValidator()

	// services
	searchService := services.NewPropertySearchService(propertyRepo, searchCache, a.Config.Search)
	phoneService := services.NewPhoneVerificationService(cacheOps, textSender, a.Config.Verification)
	userService := services.NewUserService(userRepo, userValidator, m, a.Config.JWT.Secret, a.Config.Verification.TokenExpiryMinutes)
	emailService := services.NewEmailVerificationService(userRepo, m, a.Config.Verification.TokenExpiryMinutes, a.Config.Verification.ResendCooldownMinutes)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(searchService)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.VerificationHandler = handlers.NewVerificationHandler(phoneService, emailService)
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
