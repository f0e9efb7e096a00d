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

// handlePosts returns a brand's filtered, scored posts for tabular
// display: GET /api/posts?brand=&platform=&month=
func (r *Router) handlePosts(c *gin.Context) {
	_, span := telemetry.StartSpan(c.Request.Context(), "api.posts")
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

	key := cache.HashKey("posts", brand, string(platform), month, snap.LoadedAt.String())

	var cached []models.ScoredPost
	if err := r.cache.GetJSON(key, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"brand": brand, "platform": platform, "month": month, "posts": cached,
		})
		return
	}

	posts := r.engine.FilterAndScore(snap.Posts(brand, platform), engine.Filter{Month: month})

	if err := r.cache.SetJSON(key, posts, r.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to cache posts", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"brand":    brand,
		"platform": platform,
		"month":    month,
		"posts":    posts,
	})
}

// handleTop returns the top-N posts by a ranking metric:
// GET /api/top?brand=&platform=&metric=&n=&month=
func (r *Router) handleTop(c *gin.Context) {
	_, span := telemetry.StartSpan(c.Request.Context(), "api.top")
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
	metric, err := engine.ParseMetric(c.DefaultQuery("metric", string(engine.MetricLikes)))
	if err != nil {
		badRequest(c, err)
		return
	}
	month := monthParam(c)
	n := intParam(c, "n", 5, 50)

	// Key includes the snapshot time so a refresh invalidates naturally
	key := cache.HashKey("top", brand, string(platform), string(metric), month,
		strconv.Itoa(n), snap.LoadedAt.String())

	var cached []models.ScoredPost
	if err := r.cache.GetJSON(key, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"brand": brand, "platform": platform, "metric": metric, "posts": cached,
		})
		return
	}

	posts := r.engine.FilterAndScore(snap.Posts(brand, platform), engine.Filter{Month: month})
	top := engine.TopN(posts, metric, n)

	if err := r.cache.SetJSON(key, top, r.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to cache top posts", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"brand": brand, "platform": platform, "metric": metric, "posts": top,
	})
}
