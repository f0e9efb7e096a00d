package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/brandpulse/brandpulse/internal/dataset"
	"github.com/brandpulse/brandpulse/internal/engine"
	"github.com/brandpulse/brandpulse/internal/models"
	"github.com/brandpulse/brandpulse/pkg/config"
	"github.com/brandpulse/brandpulse/pkg/logging"
)

// report is the full offline aggregation dump: every brand's summary,
// trend and hashtag table for both platforms.
type report struct {
	Window    []string               `json:"window"`
	Summaries []models.BrandSummary  `json:"summaries"`
	Trends    []models.TrendSummary  `json:"trends"`
	Hashtags  map[string]tagsByBrand `json:"hashtags"`
}

type tagsByBrand map[string][]models.HashtagCount

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting BrandPulse report")

	eng := engine.New(engine.OptionsFromConfig(&cfg.Data, &cfg.Sentiment))

	source, err := dataset.NewSource(&cfg.Data)
	if err != nil {
		logger.Fatal("Failed to configure dataset source", zap.Error(err))
	}

	loader := dataset.NewLoader(source, eng, cfg.Data.BrandList())
	snap := loader.Load(context.Background())

	out := report{
		Window:   eng.Options().Months,
		Hashtags: map[string]tagsByBrand{},
	}
	for _, platform := range models.Platforms {
		byBrand := tagsByBrand{}
		for _, brand := range snap.Brands {
			posts := snap.Posts(brand, platform)
			scored := eng.FilterAndScore(posts, engine.Filter{Month: engine.AllMonths})

			out.Summaries = append(out.Summaries, engine.Summarize(brand, platform, scored))
			out.Trends = append(out.Trends, eng.MonthlyTrend(brand, platform, scored))
			byBrand[brand] = engine.HashtagTally(eng.FilterPosts(posts, engine.Filter{Month: engine.AllMonths}), 10)
		}
		out.Hashtags[string(platform)] = byBrand
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		logger.Fatal("Failed to write report", zap.Error(err))
	}
}
