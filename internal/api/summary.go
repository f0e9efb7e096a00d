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

// handleSummary returns per-brand rollups for brand comparison:
// GET /api/summary?platform=&month=
func (r *Router) handleSummary(c *gin.Context) {
	_, span := telemetry.StartSpan(c.Request.Context(), "api.summary")
	defer span.End()

	snap := r.store.Snapshot()

	platform, err := platformParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	month := monthParam(c)

	key := cache.HashKey("summary", string(platform), month, snap.LoadedAt.String())

	var cached []models.BrandSummary
	if err := r.cache.GetJSON(key, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"platform": platform, "month": month, "summaries": cached})
		return
	}

	summaries := make([]models.BrandSummary, 0, len(snap.Brands))
	for _, brand := range snap.Brands {
		scored := r.engine.FilterAndScore(snap.Posts(brand, platform), engine.Filter{Month: month})
		summaries = append(summaries, engine.Summarize(brand, platform, scored))
	}

	if err := r.cache.SetJSON(key, summaries, r.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to cache summaries", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"platform": platform, "month": month, "summaries": summaries})
}
