// Package engine computes every derived figure the dashboard shows:
// normalized post filtering, engagement rates, lexicon sentiment and
// the brand/month rollups. All operations are pure functions over the
// snapshot they are given; inputs are never mutated, so repeated runs
// over unchanged data produce identical output.
package engine

import (
	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/config"
	"github.com/brandpulse/brandpulse/pkg/logging"
)

// Options carries the knobs that used to live as scattered constants:
// the dataset month window, sentiment thresholds and the trend band.
// Passing them explicitly keeps the engine testable in isolation.
type Options struct {
	// Months is the dataset window the "All" selection expands to.
	Months []string
	// Sentiment thresholds and scale, see ScorerOptions.
	PositiveThreshold float64
	NegativeThreshold float64
	SentimentScale    float64
	// TrendDelta is the dead band for trend classification: a
	// first-to-last sentiment move within ±TrendDelta is "stable".
	TrendDelta float64
}

// DefaultOptions returns the options matching the current exports
func DefaultOptions() Options {
	return Options{
		Months:            []string{"February", "March", "April", "May"},
		PositiveThreshold: 1.5,
		NegativeThreshold: -1.5,
		SentimentScale:    1.0,
		TrendDelta:        1.0,
	}
}

// OptionsFromConfig builds engine options from loaded configuration
func OptionsFromConfig(data *config.DataConfig, sentiment *config.SentimentConfig) Options {
	opts := DefaultOptions()
	if months := data.MonthList(); len(months) > 0 {
		opts.Months = months
	}
	opts.PositiveThreshold = sentiment.PositiveThreshold
	opts.NegativeThreshold = sentiment.NegativeThreshold
	opts.SentimentScale = sentiment.Scale
	return opts
}

// Engine is the single aggregation surface every consumer goes
// through; the per-view duplicate copies of this logic are gone.
type Engine struct {
	opts   Options
	scorer *Scorer
	logger *zap.Logger
}

// New creates an engine with the given options
func New(opts Options) *Engine {
	if len(opts.Months) == 0 {
		opts.Months = DefaultOptions().Months
	}
	if opts.TrendDelta == 0 {
		opts.TrendDelta = 1.0
	}
	return &Engine{
		opts: opts,
		scorer: NewScorer(ScorerOptions{
			PositiveThreshold: opts.PositiveThreshold,
			NegativeThreshold: opts.NegativeThreshold,
			Scale:             opts.SentimentScale,
		}),
		logger: logging.GetLogger().With(zap.String("component", "engine")),
	}
}

// Options returns the engine's effective options
func (e *Engine) Options() Options {
	return e.opts
}

// ScorePosts derives engagement and sentiment for each post, returning
// new records. The input posts are read-only.
func (e *Engine) ScorePosts(posts []models.Post) []models.ScoredPost {
	scored := make([]models.ScoredPost, 0, len(posts))
	for _, p := range posts {
		res := e.scorer.Score(p.Text)
		scored = append(scored, models.ScoredPost{
			Post:           p,
			EngagementRate: EngagementRate(p),
			SentimentScore: res.Score,
			SentimentLabel: res.Label,
			PositiveWords:  res.PositiveWords,
			NegativeWords:  res.NegativeWords,
		})
	}
	return scored
}

// FilterAndScore runs the filter stage then the scoring stage
func (e *Engine) FilterAndScore(posts []models.Post, f Filter) []models.ScoredPost {
	return e.ScorePosts(e.FilterPosts(posts, f))
}
