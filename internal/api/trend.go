package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/cache"
	"github.com/brandpulse/brandpulse/internal/engine"
	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/telemetry"
)

// handleTrend returns the monthly sentiment/engagement trend for one
// brand: GET /api/trend?brand=&platform=
func (r *Router) handleTrend(c *gin.Context) {
	_, span := telemetry.StartSpan(c.Request.Context(), "api.trend")
	defer span.End()

	snap := r.store.Snapshot()

	brand, err := brandParam(c, snap)
	if err != nil {
		badRequest(c, err)
		return
	}
	platform, err := platformParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	key := cache.HashKey("trend", brand, string(platform), snap.LoadedAt.String())

	var cached models.TrendSummary
	if err := r.cache.GetJSON(key, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	// Trend always spans the whole dataset window
	scored := r.engine.FilterAndScore(snap.Posts(brand, platform), engine.Filter{Month: engine.AllMonths})
	trend := r.engine.MonthlyTrend(brand, platform, scored)

	if err := r.cache.SetJSON(key, trend, r.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to cache trend", zap.Error(err))
	}

	c.JSON(http.StatusOK, trend)
}
