package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/search-gateway/api/health"
	"github.com/killallgit/search-gateway/api/search"
	"github.com/killallgit/search-gateway/api/suggestions"
	"github.com/killallgit/search-gateway/api/types"
	"github.com/killallgit/search-gateway/api/version"
	_ "github.com/killallgit/search-gateway/docs/swagger"
	"github.com/killallgit/search-gateway/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, cfg *config.Config, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	if cfg.Monitoring.Enabled {
		engine.GET(cfg.Monitoring.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFound())

	apiGroup := engine.Group("/api")

	searchGroup := apiGroup.Group("/search")
	if cfg.RateLimiting.Enabled {
		searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
			cfg.RateLimiting.SearchRPS, cfg.RateLimiting.SearchBurst))
	}
	search.RegisterRoutes(searchGroup, deps)

	suggestions.RegisterRoutes(apiGroup.Group("/suggestions"), deps)

	return nil
}
