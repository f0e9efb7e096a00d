package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/cache"
	"github.com/brandpulse/brandpulse/internal/engine"
	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/telemetry"
)

// handleHashtags returns a brand's top hashtags:
// GET /api/hashtags?brand=&platform=&k=&month=
func (r *Router) handleHashtags(c *gin.Context) {
	_, span := telemetry.StartSpan(c.Request.Context(), "api.hashtags")
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
	month := monthParam(c)
	k := intParam(c, "k", 10, 100)

	key := cache.HashKey("hashtags", brand, string(platform), month,
		strconv.Itoa(k), snap.LoadedAt.String())

	var cached []models.HashtagCount
	if err := r.cache.GetJSON(key, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"brand": brand, "platform": platform, "month": month, "hashtags": cached,
		})
		return
	}

	filtered := r.engine.FilterPosts(snap.Posts(brand, platform), engine.Filter{Month: month})
	tags := engine.HashtagTally(filtered, k)

	if err := r.cache.SetJSON(key, tags, r.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to cache hashtags", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"brand":    brand,
		"platform": platform,
		"month":    month,
		"hashtags": tags,
	})
}
