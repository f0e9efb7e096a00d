package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/cache"
	"github.com/brandpulse/brandpulse/internal/dataset"
	"github.com/brandpulse/brandpulse/internal/engine"
	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/logging"
)

// Router wires the dashboard endpoints to the aggregation engine.
// Every endpoint reads one snapshot, computes, and returns; data
// quality problems never become HTTP errors, only bad request
// parameters do.
type Router struct {
	store    *dataset.Store
	engine   *engine.Engine
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(store *dataset.Store, eng *engine.Engine, redisCache *cache.Cache, cacheTTL time.Duration) *Router {
	return &Router{
		store:    store,
		engine:   eng,
		cache:    redisCache,
		cacheTTL: cacheTTL,
		logger:   logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(e *gin.Engine) {
	// Health check endpoints
	e.GET("/health", r.healthHandler)
	e.GET("/.well-known/healthcheck.json", r.healthHandler)

	api := e.Group("/api")
	api.GET("/brands", r.handleBrands)
	api.GET("/posts", r.handlePosts)
	api.GET("/summary", r.handleSummary)
	api.GET("/top", r.handleTop)
	api.GET("/trend", r.handleTrend)
	api.GET("/hashtags", r.handleHashtags)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	cacheStatus := "ok"
	switch err := r.cache.Health(c.Request.Context()); {
	case errors.Is(err, cache.ErrCacheDisabled):
		cacheStatus = "disabled"
	case err != nil:
		cacheStatus = "error"
		r.logger.Warn("Cache health check failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "brandpulse-api",
		"cache":   cacheStatus,
	})
}

// handleBrands returns the fixed brand enumeration
func (r *Router) handleBrands(c *gin.Context) {
	snap := r.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"brands":   snap.Brands,
		"loadedAt": snap.LoadedAt,
	})
}

// badRequest rejects malformed caller parameters
func badRequest(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var apiErr *Error
	if errors.As(err, &apiErr) {
		status = apiErr.Code
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// platformParam parses the required platform query parameter
func platformParam(c *gin.Context) (models.Platform, error) {
	platform, err := models.ParsePlatform(c.Query("platform"))
	if err != nil {
		return "", NewError(http.StatusBadRequest, err.Error())
	}
	return platform, nil
}

// brandParam validates the required brand query parameter against the
// snapshot's brand set
func brandParam(c *gin.Context, snap *dataset.Snapshot) (string, error) {
	brand := c.Query("brand")
	if brand == "" {
		return "", NewError(http.StatusBadRequest, "missing required parameter: brand")
	}
	for _, b := range snap.Brands {
		if b == brand {
			return brand, nil
		}
	}
	return "", NewError(http.StatusBadRequest, fmt.Sprintf("unknown brand: %q", brand))
}

// monthParam reads the optional month selection, defaulting to All
func monthParam(c *gin.Context) string {
	month := c.Query("month")
	if month == "" {
		return engine.AllMonths
	}
	return month
}

// intParam reads an optional positive integer parameter with a
// default and an upper cap
func intParam(c *gin.Context, name string, def, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
