package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brandpulse/brandpulse/internal/models"
)

// Metric names a ranking dimension for top-N extraction
type Metric string

const (
	MetricLikes      Metric = "likes"
	MetricComments   Metric = "comments"
	MetricShares     Metric = "shares"
	MetricViews      Metric = "views"
	MetricEngagement Metric = "engagement"
)

// ParseMetric parses a ranking metric name
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricLikes, MetricComments, MetricShares, MetricViews, MetricEngagement:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unrecognized metric: %q", s)
	}
}

// metricValue extracts the chosen metric from a scored post
func metricValue(p models.ScoredPost, m Metric) float64 {
	switch m {
	case MetricLikes:
		return float64(p.Likes)
	case MetricComments:
		return float64(p.Comments)
	case MetricShares:
		return float64(p.Shares)
	case MetricViews:
		return float64(p.Views)
	case MetricEngagement:
		return p.EngagementRate
	default:
		panic(fmt.Sprintf("unrecognized metric: %q", m))
	}
}

// Summarize reduces a scored cohort into per-brand totals, averages
// and the ratio-of-sums engagement rate. Zero posts means zero
// averages, never NaN.
func Summarize(brand string, platform models.Platform, posts []models.ScoredPost) models.BrandSummary {
	s := models.BrandSummary{
		Brand:     brand,
		Platform:  platform,
		PostCount: len(posts),
	}

	var sentimentSum float64
	for _, p := range posts {
		s.TotalLikes += p.Likes
		s.TotalComments += p.Comments
		s.TotalShares += p.Shares
		s.TotalCollects += p.Collects
		s.TotalViews += p.Views
		sentimentSum += p.SentimentScore

		switch p.SentimentLabel {
		case models.SentimentPositive:
			s.PositiveCount++
		case models.SentimentNegative:
			s.NegativeCount++
		default:
			s.NeutralCount++
		}
	}

	if s.PostCount > 0 {
		n := float64(s.PostCount)
		s.AvgLikes = float64(s.TotalLikes) / n
		s.AvgComments = float64(s.TotalComments) / n
		s.AvgViews = float64(s.TotalViews) / n
		s.AvgSentiment = sentimentSum / n
	}

	s.EngagementRate = CohortRate(bare(posts))
	return s
}

// TopN returns the n highest posts by metric. The sort is stable:
// posts with equal metric values keep their input order. The input
// slice is never reordered.
func TopN(posts []models.ScoredPost, metric Metric, n int) []models.ScoredPost {
	ranked := append([]models.ScoredPost(nil), posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metricValue(ranked[i], metric) > metricValue(ranked[j], metric)
	})
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// MonthlyTrend buckets posts by calendar month and classifies the
// sentiment trajectory by comparing the first and last months in
// January..December order. The two-point comparison is intentionally
// coarse; no smoothing.
func (e *Engine) MonthlyTrend(brand string, platform models.Platform, posts []models.ScoredPost) models.TrendSummary {
	buckets := make(map[string]*models.MonthlyPoint)
	for _, p := range posts {
		name := p.Date.Month().String()
		b := buckets[name]
		if b == nil {
			b = &models.MonthlyPoint{Month: name}
			buckets[name] = b
		}
		b.PostCount++
		b.EngagementSum += p.EngagementRate
		b.SentimentSum += p.SentimentScore
		b.SentimentCount++
	}

	points := make([]models.MonthlyPoint, 0, len(buckets))
	for m := time.January; m <= time.December; m++ {
		b, ok := buckets[m.String()]
		if !ok {
			continue
		}
		if b.SentimentCount > 0 {
			b.SentimentAvg = b.SentimentSum / float64(b.SentimentCount)
		}
		points = append(points, *b)
	}

	trend := models.TrendStable
	if len(points) >= 2 {
		delta := points[len(points)-1].SentimentAvg - points[0].SentimentAvg
		switch {
		case delta > e.opts.TrendDelta:
			trend = models.TrendImproving
		case delta < -e.opts.TrendDelta:
			trend = models.TrendDeclining
		}
	}

	return models.TrendSummary{
		Brand:    brand,
		Platform: platform,
		Points:   points,
		Trend:    trend,
	}
}

// NormalizeTag canonicalizes a hashtag: trim, strip the leading '#',
// lowercase. "#Sale", "sale" and "SALE" all tally to "sale".
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	return strings.ToLower(strings.TrimSpace(tag))
}

// HashtagTally counts normalized hashtag occurrences and returns the
// top k, sorted descending by count with first-seen order breaking
// ties. k is a parameter because call sites want 5 or 10.
func HashtagTally(posts []models.Post, k int) []models.HashtagCount {
	type entry struct {
		tag   string
		count int
		seen  int
	}

	byTag := make(map[string]*entry)
	order := make([]*entry, 0)
	for _, p := range posts {
		for _, raw := range p.Hashtags {
			tag := NormalizeTag(raw)
			if tag == "" {
				continue
			}
			en := byTag[tag]
			if en == nil {
				en = &entry{tag: tag, seen: len(order)}
				byTag[tag] = en
				order = append(order, en)
			}
			en.count++
		}
	}

	// order is first-seen; the stable sort keeps that for equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if k < 0 {
		k = 0
	}
	if k > len(order) {
		k = len(order)
	}
	out := make([]models.HashtagCount, 0, k)
	for _, en := range order[:k] {
		out = append(out, models.HashtagCount{Tag: en.tag, Count: en.count})
	}
	return out
}

// bare strips derived fields, returning the underlying posts
func bare(posts []models.ScoredPost) []models.Post {
	out := make([]models.Post, len(posts))
	for i, p := range posts {
		out[i] = p.Post
	}
	return out
}
