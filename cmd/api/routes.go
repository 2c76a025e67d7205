package main

import (
	"net/http"

	"homeinsight-septic/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupMetricsEndpoint()
	a.setupAPIRoutes()
}

// setupHealthCheck configures the health check endpoint
func (a *App) setupHealthCheck() {
	// The service is stateless; if the process is serving, it is healthy.
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupMetricsEndpoint exposes Prometheus metrics
func (a *App) setupMetricsEndpoint() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api/v1")
	{
		protected := api.Group("/property")
		protected.Use(middleware.BasicAuth(a.Config))
		{
			protected.GET("/details", a.PropertyHandler.GetPropertyDetails)
		}
	}
}
