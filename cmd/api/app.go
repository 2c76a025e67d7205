package main

import (
	"net/http"
	"time"

	"homeinsight-septic/internal/handlers"
	"homeinsight-septic/internal/middleware"
	"homeinsight-septic/internal/services"
	"homeinsight-septic/internal/transformers"
	"homeinsight-septic/internal/validators"
	"homeinsight-septic/pkg/config"
	"homeinsight-septic/pkg/housecanary"
	"homeinsight-septic/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
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
	// upstream client
	upstream := housecanary.NewClient(
		a.Config.HouseCanary.APIKey,
		a.Config.HouseCanary.APISecret,
		a.Config.HouseCanary.BaseURL,
		time.Duration(a.Config.HouseCanary.TimeoutSeconds)*time.Second,
	)

	// validators and transformers
	addressValidator := validators.NewAddressValidator()
	outcomeTransformer := transformers.NewOutcomeTransformer()

	// services
	detailsService := services.NewPropertyDetailsService(upstream, outcomeTransformer)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(detailsService, addressValidator)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}
